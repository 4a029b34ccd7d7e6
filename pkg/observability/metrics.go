package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the gateway's Prometheus metrics
type Metrics struct {
	RequestsTotal        *prometheus.CounterVec
	RequestDuration      *prometheus.HistogramVec
	ProviderCallsTotal   *prometheus.CounterVec
	ProviderCallDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewMetrics creates and registers all gateway metrics
func NewMetrics(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &Metrics{
		registry: registry,
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "propwise_ai_requests_total",
				Help: "Total number of AI feature requests",
			},
			[]string{"feature", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "propwise_ai_request_duration_seconds",
				Help:    "AI feature request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"feature"},
		),
		ProviderCallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "propwise_ai_provider_calls_total",
				Help: "Total number of outbound model provider calls",
			},
			[]string{"feature", "outcome"},
		),
		ProviderCallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "propwise_ai_provider_call_duration_seconds",
				Help:    "Outbound model provider call duration in seconds",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
			},
			[]string{"feature"},
		),
	}

	registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.ProviderCallsTotal,
		m.ProviderCallDuration,
	)

	return m
}

// Handler returns the Prometheus scrape handler for this metrics registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
