package gateway

import (
	"errors"
	"net/http"

	"github.com/propwise/propwise/pkg/auth"
	"github.com/propwise/propwise/pkg/billing"
	"github.com/propwise/propwise/pkg/features"
	"github.com/propwise/propwise/pkg/provider"
)

// Kind classifies a pipeline failure
type Kind string

const (
	KindUnauthenticated           Kind = "unauthenticated"
	KindInsufficientTier          Kind = "insufficient_tier"
	KindInvalidRequest            Kind = "invalid_request"
	KindProviderUnavailable       Kind = "provider_unavailable"
	KindMalformedProviderResponse Kind = "malformed_provider_response"
	kindInternal                  Kind = "internal"
)

// Error is the uniform failure envelope the dispatcher maps stage errors
// into. Message is what the caller sees; the original error stays in the
// logs.
type Error struct {
	Kind    Kind
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

// Classify converts a stage failure into its gateway error. Unrecognized
// errors (a session store or billing backend outage, a bug) map to a plain
// internal 500 so no detail leaks.
func Classify(err error) *Error {
	switch {
	case errors.Is(err, auth.ErrMissingCredential), errors.Is(err, auth.ErrInvalidSession):
		return &Error{
			Kind:    KindUnauthenticated,
			Message: "authentication required",
			Status:  http.StatusUnauthorized,
		}
	case errors.Is(err, features.ErrInvalidRequest):
		return &Error{
			Kind:    KindInvalidRequest,
			Message: err.Error(),
			Status:  http.StatusBadRequest,
		}
	case errors.Is(err, provider.ErrUnavailable):
		return &Error{
			Kind:    KindProviderUnavailable,
			Message: "AI service temporarily unavailable",
			Status:  http.StatusBadGateway,
		}
	case errors.Is(err, features.ErrMalformedResponse):
		return &Error{
			Kind:    KindMalformedProviderResponse,
			Message: "AI service returned an invalid response",
			Status:  http.StatusInternalServerError,
		}
	}

	var tierErr *billing.InsufficientTierError
	if errors.As(err, &tierErr) {
		return &Error{
			Kind:    KindInsufficientTier,
			Message: tierErr.Required.DisplayName() + " subscription required to use this feature",
			Status:  http.StatusForbidden,
		}
	}

	return &Error{
		Kind:    kindInternal,
		Message: "internal server error",
		Status:  http.StatusInternalServerError,
	}
}
