package billing

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // postgres driver
)

// PostgresTierSource implements TierSource against the billing database
type PostgresTierSource struct {
	db *sql.DB
}

// NewPostgresTierSource creates a new PostgresTierSource
func NewPostgresTierSource(db *sql.DB) *PostgresTierSource {
	return &PostgresTierSource{db: db}
}

// LookupTier returns the tier of the user's active subscription.
// Users with no active subscription are on the free tier.
func (s *PostgresTierSource) LookupTier(ctx context.Context, userID string) (Tier, error) {
	query := `
		SELECT plan FROM subscriptions
		WHERE user_id = $1 AND status = 'active'
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var plan string
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&plan)
	if err == sql.ErrNoRows {
		return TierFree, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query subscription: %w", err)
	}

	tier := Tier(plan)
	if !tier.Valid() {
		return "", fmt.Errorf("unknown subscription plan %q for user %s", plan, userID)
	}
	return tier, nil
}

// StaticTierSource returns a fixed tier for every user. Used in tests and
// in local development where no billing database is available.
type StaticTierSource struct {
	tier Tier
}

// NewStaticTierSource creates a TierSource that always returns the given tier
func NewStaticTierSource(tier Tier) *StaticTierSource {
	return &StaticTierSource{tier: tier}
}

// LookupTier returns the configured tier
func (s *StaticTierSource) LookupTier(ctx context.Context, userID string) (Tier, error) {
	return s.tier, nil
}
