// Package provider is the transport boundary to the external model service.
//
// The client sends an instruction pair with fixed generation parameters and
// returns the raw generated text. It never inspects or interprets the reply;
// schema validation happens in the features package. Any transport-level
// failure (missing credential, timeout, non-success status) surfaces as
// ErrUnavailable, distinct from a reply that arrives but fails validation.
package provider
