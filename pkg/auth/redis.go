package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultSessionPrefix is the key namespace the session service writes under
const DefaultSessionPrefix = "session"

// sessionRecord is the JSON document the session service stores per token
type sessionRecord struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RedisSessionStore implements SessionStore against the shared Redis
// instance the session service writes to
type RedisSessionStore struct {
	client *redis.Client
	prefix string
}

// NewRedisSessionStore creates a Redis-backed session store
func NewRedisSessionStore(client *redis.Client, prefix string) *RedisSessionStore {
	if prefix == "" {
		prefix = DefaultSessionPrefix
	}
	return &RedisSessionStore{client: client, prefix: prefix}
}

// Lookup resolves a token to its session record. Unknown tokens, corrupt
// records, and expired sessions all surface as ErrInvalidSession; transport
// failures are returned as-is so callers can tell an outage from a bad token.
func (s *RedisSessionStore) Lookup(ctx context.Context, token string) (Identity, error) {
	key := fmt.Sprintf("%s:%s", s.prefix, token)

	raw, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return Identity{}, ErrInvalidSession
	}
	if err != nil {
		return Identity{}, fmt.Errorf("session lookup: %w", err)
	}

	var record sessionRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return Identity{}, ErrInvalidSession
	}

	if !record.ExpiresAt.IsZero() && time.Now().After(record.ExpiresAt) {
		return Identity{}, ErrInvalidSession
	}

	return Identity{UserID: record.UserID, Email: record.Email}, nil
}
