package provider

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the model service could not produce a reply:
// missing credential configuration, transport failure, timeout, or a
// non-success response status
var ErrUnavailable = errors.New("model provider unavailable")

// GenerationRequest is one independent call to the model service. It is
// derived deterministically from a feature's prompt spec and the request
// payload; nothing in it survives the call.
type GenerationRequest struct {
	System          string
	User            string
	Temperature     float32
	MaxOutputTokens int
}

// Client performs a single generation call and returns the raw text.
// Implementations must honor context cancellation so a caller disconnect
// aborts the outbound call. No implementation retries.
type Client interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}
