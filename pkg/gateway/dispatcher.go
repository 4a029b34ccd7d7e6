package gateway

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/propwise/propwise/pkg/auth"
	"github.com/propwise/propwise/pkg/billing"
	"github.com/propwise/propwise/pkg/features"
	"github.com/propwise/propwise/pkg/httputil"
	"github.com/propwise/propwise/pkg/observability"
	"github.com/propwise/propwise/pkg/prompt"
	"github.com/propwise/propwise/pkg/provider"
)

// Dispatcher orchestrates the request pipeline for every feature endpoint
type Dispatcher struct {
	sessions auth.SessionStore
	tiers    billing.TierSource
	provider provider.Client
	log      logrus.FieldLogger
	metrics  *observability.Metrics
}

// NewDispatcher creates a dispatcher over the injected collaborators
func NewDispatcher(sessions auth.SessionStore, tiers billing.TierSource, client provider.Client, log logrus.FieldLogger, metrics *observability.Metrics) *Dispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Dispatcher{
		sessions: sessions,
		tiers:    tiers,
		provider: client,
		log:      log,
		metrics:  metrics,
	}
}

// RegisterRoutes registers one POST route per feature. Pre-flight OPTIONS
// requests are answered by the CORS middleware before routing.
func (d *Dispatcher) RegisterRoutes(router *mux.Router) {
	for _, feature := range features.All() {
		spec := features.MustLookup(feature)
		router.HandleFunc(spec.Path, d.handleFeature(feature)).Methods(http.MethodPost)
	}
}

// handleFeature runs the fixed pipeline for one feature. Stages run strictly
// in order and the first failure ends the request.
func (d *Dispatcher) handleFeature(feature features.Feature) http.HandlerFunc {
	spec := features.MustLookup(feature)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		start := time.Now()
		log := d.log.WithFields(logrus.Fields{
			"feature":    string(feature),
			"request_id": r.Header.Get("X-Request-ID"),
		})

		// Authenticating: the credential is checked before the body is
		// touched, so an anonymous call costs nothing.
		identity, err := auth.Authenticate(ctx, d.sessions, r)
		if err != nil {
			d.fail(w, log, feature, start, err)
			return
		}
		log = log.WithField("user_id", identity.UserID)

		// Authorizing: tier gate runs before any provider cost is incurred.
		if err := billing.Authorize(ctx, d.tiers, identity.UserID, spec.MinimumTier); err != nil {
			d.fail(w, log, feature, start, err)
			return
		}

		// Prompting: decode and validate the payload, then compile it into
		// the feature's prompt.
		body, err := httputil.ReadBody(w, r)
		if err != nil {
			d.fail(w, log, feature, start, fmt.Errorf("%w: %v", features.ErrInvalidRequest, err))
			return
		}
		req, err := features.ParseRequest(feature, body)
		if err != nil {
			d.fail(w, log, feature, start, err)
			return
		}
		rendered, err := prompt.Build(req)
		if err != nil {
			d.fail(w, log, feature, start, err)
			return
		}

		// Calling: the only stage that may block for long. The request
		// context rides along so a caller disconnect aborts the call.
		callStart := time.Now()
		raw, err := d.provider.Generate(ctx, provider.GenerationRequest{
			System:          rendered.System,
			User:            rendered.User,
			Temperature:     rendered.Temperature,
			MaxOutputTokens: rendered.MaxOutputTokens,
		})
		d.observeProviderCall(feature, callStart, err)
		if err != nil {
			d.fail(w, log, feature, start, err)
			return
		}

		// Validating: the reply is untrusted input until it matches the
		// feature's response shape.
		result, err := features.ValidateResponse(feature, raw)
		if err != nil {
			d.fail(w, log, feature, start, err)
			return
		}

		d.observeRequest(feature, http.StatusOK, start)
		log.WithField("duration", time.Since(start).String()).Info("request succeeded")
		httputil.WriteRawJSON(w, http.StatusOK, result)
	}
}

// fail maps a stage error to the uniform error envelope. The original error
// is logged here at the boundary; the caller sees only the concise message.
func (d *Dispatcher) fail(w http.ResponseWriter, log logrus.FieldLogger, feature features.Feature, start time.Time, err error) {
	gwErr := Classify(err)

	entry := log.WithError(err).WithField("kind", string(gwErr.Kind))
	if gwErr.Status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Warn("request rejected")
	}

	d.observeRequest(feature, gwErr.Status, start)
	httputil.WriteErrorMessage(w, gwErr.Status, gwErr.Message)
}

func (d *Dispatcher) observeRequest(feature features.Feature, status int, start time.Time) {
	if d.metrics == nil {
		return
	}
	d.metrics.RequestsTotal.WithLabelValues(string(feature), strconv.Itoa(status)).Inc()
	d.metrics.RequestDuration.WithLabelValues(string(feature)).Observe(time.Since(start).Seconds())
}

func (d *Dispatcher) observeProviderCall(feature features.Feature, start time.Time, err error) {
	if d.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	d.metrics.ProviderCallsTotal.WithLabelValues(string(feature), outcome).Inc()
	d.metrics.ProviderCallDuration.WithLabelValues(string(feature)).Observe(time.Since(start).Seconds())
}
