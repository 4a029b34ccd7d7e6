package provider

import (
	"context"
	"sync"
)

// MockClient is a scriptable Client for tests. It records every request it
// receives and returns the configured reply or error.
type MockClient struct {
	mu       sync.Mutex
	Reply    string
	Err      error
	Requests []GenerationRequest
}

// Generate returns the scripted reply or error and records the request
func (m *MockClient) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}

// CallCount returns how many times Generate was invoked
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}
