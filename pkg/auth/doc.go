// Package auth authenticates inbound requests.
//
// A request carries a bearer token in the Authorization header; the token is
// resolved to an Identity through a SessionStore backed by the external
// session service. The package performs read-only lookups and holds no
// session state of its own.
package auth
