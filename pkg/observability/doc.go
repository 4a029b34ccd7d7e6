// Package observability provides structured logging, Prometheus metrics,
// health probes, and graceful shutdown for the gateway.
//
// Operational detail (original provider errors, stack traces, token usage)
// is logged here at the boundary; callers only ever see the concise error
// envelope the gateway package produces.
package observability
