// Package billing maps authenticated users to subscription tiers and decides
// whether a feature's minimum tier is met.
//
// The tier lookup itself is an external concern (the billing backend owns
// subscription state); this package only defines the ordered Tier enumeration,
// the TierSource capability used to query it, and the gate check performed
// before any provider call is made.
package billing
