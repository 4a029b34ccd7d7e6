// Package features is the schema registry for the AI gateway.
//
// It defines the six supported features, the shape of each feature's request
// payload, and the shape of the structured response the provider is expected
// to return. Both shapes are enforced here: inbound payloads at the request
// boundary, provider output before it is trusted downstream.
//
// Validation is structural only. A required field must be present with the
// right JSON kind; values are never coerced, clamped, or bounds-checked, so
// a syntactically valid but semantically odd reply (a negative occupancy
// rate, a risk score over 100) passes through to the caller unchanged.
package features
