package billing

import (
	"context"
	"fmt"
)

// Tier represents a subscription tier
type Tier string

const (
	TierFree     Tier = "free"
	TierPremium  Tier = "premium"
	TierBusiness Tier = "business"
)

// tierRank defines the total order free < premium < business
var tierRank = map[Tier]int{
	TierFree:     0,
	TierPremium:  1,
	TierBusiness: 2,
}

// Valid reports whether t is a known tier
func (t Tier) Valid() bool {
	_, ok := tierRank[t]
	return ok
}

// Meets reports whether t satisfies the given minimum tier.
// A higher tier always satisfies a lower requirement.
func (t Tier) Meets(minimum Tier) bool {
	return tierRank[t] >= tierRank[minimum]
}

// DisplayName returns the tier name used in user-facing messages
func (t Tier) DisplayName() string {
	switch t {
	case TierPremium:
		return "Premium"
	case TierBusiness:
		return "Business"
	default:
		return "Free"
	}
}

// TierSource looks up the current subscription tier for a user.
// Implementations query an external billing backend; the gateway never
// caches or stores tier state itself.
type TierSource interface {
	LookupTier(ctx context.Context, userID string) (Tier, error)
}

// InsufficientTierError indicates the user's tier is strictly below the
// tier a feature requires
type InsufficientTierError struct {
	Required Tier
	Current  Tier
}

func (e *InsufficientTierError) Error() string {
	return fmt.Sprintf("%s subscription required (current tier: %s)", e.Required.DisplayName(), e.Current)
}

// Authorize checks the user's tier against a feature's minimum tier.
// It returns an *InsufficientTierError when the user's tier is below the
// requirement, or the lookup error if the billing backend is unreachable.
func Authorize(ctx context.Context, source TierSource, userID string, minimum Tier) error {
	tier, err := source.LookupTier(ctx, userID)
	if err != nil {
		return fmt.Errorf("tier lookup for user %s: %w", userID, err)
	}
	if !tier.Meets(minimum) {
		return &InsufficientTierError{Required: minimum, Current: tier}
	}
	return nil
}
