// Package gateway dispatches inbound feature requests through the fixed
// pipeline: authenticate, gate by subscription tier, build the prompt, call
// the model provider, validate the reply.
//
// Each stage fails fast; a failed stage skips everything after it and no
// stage is ever retried. The dispatcher is the single place where stage
// failures become externally visible statuses and messages — no other
// package writes to the response.
package gateway
