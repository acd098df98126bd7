package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the service.
//
// ProviderFallbacks is the observability half of the degraded-value
// contract: every time a fixed fallback is substituted for an upstream
// result, the counter for that provider goes up, even though the HTTP
// response stays 200.
type Metrics struct {
	ProviderRequests  *prometheus.CounterVec // labels: provider, outcome={success,error}
	ProviderFallbacks *prometheus.CounterVec // labels: provider
	SearchesPersisted prometheus.Counter
}

// New creates and registers all service metrics with the default registry.
func New() *Metrics {
	m := build()
	prometheus.MustRegister(
		m.ProviderRequests,
		m.ProviderFallbacks,
		m.SearchesPersisted,
	)
	return m
}

// NewForTesting creates Metrics without registering them, so parallel
// tests do not trip over duplicate registration.
func NewForTesting() *Metrics {
	return build()
}

func build() *Metrics {
	return &Metrics{
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "event_weather",
			Name:      "provider_requests_total",
			Help:      "Upstream provider requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		ProviderFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "event_weather",
			Name:      "provider_fallbacks_total",
			Help:      "Degraded fallback values substituted for failed upstream lookups.",
		}, []string{"provider"}),
		SearchesPersisted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "event_weather",
			Name:      "searches_persisted_total",
			Help:      "Search records committed to storage.",
		}),
	}
}

// Success and Error record a provider request outcome.
func (m *Metrics) Success(provider string) {
	m.ProviderRequests.WithLabelValues(provider, "success").Inc()
}

func (m *Metrics) Error(provider string) {
	m.ProviderRequests.WithLabelValues(provider, "error").Inc()
}

// Fallback records both the failed request and the substituted value.
func (m *Metrics) Fallback(provider string) {
	m.ProviderRequests.WithLabelValues(provider, "error").Inc()
	m.ProviderFallbacks.WithLabelValues(provider).Inc()
}
