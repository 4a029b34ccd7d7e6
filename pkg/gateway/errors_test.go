package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/propwise/propwise/pkg/auth"
	"github.com/propwise/propwise/pkg/billing"
	"github.com/propwise/propwise/pkg/features"
	"github.com/propwise/propwise/pkg/provider"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   Kind
		status int
	}{
		{"missing credential", auth.ErrMissingCredential, KindUnauthenticated, http.StatusUnauthorized},
		{"invalid session", auth.ErrInvalidSession, KindUnauthenticated, http.StatusUnauthorized},
		{"wrapped session error", fmt.Errorf("stage: %w", auth.ErrInvalidSession), KindUnauthenticated, http.StatusUnauthorized},
		{"tier denial", &billing.InsufficientTierError{Required: billing.TierPremium, Current: billing.TierFree}, KindInsufficientTier, http.StatusForbidden},
		{"invalid request", fmt.Errorf("%w: missing field", features.ErrInvalidRequest), KindInvalidRequest, http.StatusBadRequest},
		{"provider down", fmt.Errorf("%w: status 503", provider.ErrUnavailable), KindProviderUnavailable, http.StatusBadGateway},
		{"malformed reply", fmt.Errorf("%w: not JSON", features.ErrMalformedResponse), KindMalformedProviderResponse, http.StatusInternalServerError},
		{"unknown error", errors.New("redis timeout"), kindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gwErr := Classify(tt.err)
			assert.Equal(t, tt.kind, gwErr.Kind)
			assert.Equal(t, tt.status, gwErr.Status)
			assert.NotEmpty(t, gwErr.Message)
		})
	}
}

func TestClassifyMessagesDoNotLeakDetail(t *testing.T) {
	gwErr := Classify(fmt.Errorf("%w: connect tcp 10.0.0.5:443: connection refused", provider.ErrUnavailable))
	assert.NotContains(t, gwErr.Message, "10.0.0.5")

	gwErr = Classify(errors.New("pq: password authentication failed"))
	assert.Equal(t, "internal server error", gwErr.Message)
}

func TestClassifyTierMessageNamesRequiredTier(t *testing.T) {
	gwErr := Classify(&billing.InsufficientTierError{Required: billing.TierBusiness, Current: billing.TierPremium})
	assert.Contains(t, gwErr.Message, "Business subscription required")
}
