package features

import (
	"testing"

	"github.com/propwise/propwise/pkg/billing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, feature := range All() {
		t.Run(string(feature), func(t *testing.T) {
			spec, err := Lookup(feature)
			require.NoError(t, err)
			assert.Equal(t, feature, spec.Feature)
			assert.NotEmpty(t, spec.Path)
			assert.True(t, spec.MinimumTier.Valid())
			assert.NotEmpty(t, spec.Request)
			assert.NotEmpty(t, spec.Response)
		})
	}

	_, err := Lookup(Feature("bogus"))
	assert.Error(t, err)
}

func TestMinimumTiers(t *testing.T) {
	// Contract generation produces legally binding text and is gated higher
	// than the analytical features.
	assert.Equal(t, billing.TierBusiness, MustLookup(ContractGeneration).MinimumTier)

	for _, feature := range []Feature{PaymentAnalysis, FiscalAnalysis, Communication, ProblemDiagnosis, MonthlySummary} {
		assert.Equal(t, billing.TierPremium, MustLookup(feature).MinimumTier, string(feature))
	}
}

func TestEveryRequestShapeRequiresUserID(t *testing.T) {
	for _, feature := range All() {
		spec := MustLookup(feature)
		found := false
		for _, field := range spec.Request {
			if field.Name == "userId" {
				found = true
				assert.Equal(t, KindString, field.Kind)
				assert.False(t, field.Optional)
			}
		}
		assert.True(t, found, "feature %s missing userId", feature)
	}
}

func TestMustLookupPanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { MustLookup(Feature("bogus")) })
}
