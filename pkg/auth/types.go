package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrMissingCredential indicates the Authorization header was absent or
	// not a bearer credential
	ErrMissingCredential = errors.New("missing or malformed authorization header")

	// ErrInvalidSession indicates the session store rejected the token as
	// unknown, revoked, or expired
	ErrInvalidSession = errors.New("invalid or expired session")
)

// Identity is the authenticated caller of a request
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

// SessionStore resolves a session token to the identity it belongs to.
// Implementations query the external session service; a failed lookup is
// reported as ErrInvalidSession regardless of the underlying cause so the
// caller cannot distinguish unknown from expired tokens.
type SessionStore interface {
	Lookup(ctx context.Context, token string) (Identity, error)
}

// BearerToken extracts the bearer token from a request's Authorization header
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingCredential
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrMissingCredential
	}
	return parts[1], nil
}

// Authenticate resolves the request's bearer credential to an Identity.
// It fails with ErrMissingCredential before any store lookup when the
// credential is absent, and with ErrInvalidSession when the store rejects it.
func Authenticate(ctx context.Context, store SessionStore, r *http.Request) (Identity, error) {
	token, err := BearerToken(r)
	if err != nil {
		return Identity{}, err
	}
	return store.Lookup(ctx, token)
}

// StaticSessionStore resolves tokens from a fixed in-memory table. Used in
// tests and in local development mode.
type StaticSessionStore struct {
	sessions map[string]Identity
}

// NewStaticSessionStore creates a session store over a fixed token table
func NewStaticSessionStore(sessions map[string]Identity) *StaticSessionStore {
	if sessions == nil {
		sessions = make(map[string]Identity)
	}
	return &StaticSessionStore{sessions: sessions}
}

// Lookup resolves a token against the static table
func (s *StaticSessionStore) Lookup(ctx context.Context, token string) (Identity, error) {
	identity, ok := s.sessions[token]
	if !ok {
		return Identity{}, ErrInvalidSession
	}
	return identity, nil
}
