// Package metrics owns the process-wide Prometheus registry and its scrape
// endpoint. Feature packages register their own collectors on it.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the registry and the HTTP-level collectors.
type Metrics struct {
	Registry        *prometheus.Registry
	RequestsTotal   *prometheus.CounterVec
	RateLimitDenied prometheus.Counter
}

// New creates a registry with Go runtime and process collectors plus the
// HTTP request counters.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "covera_http_requests_total",
			Help: "HTTP requests served, by method and status code",
		}, []string{"method", "code"}),
		RateLimitDenied: factory.NewCounter(prometheus.CounterOpts{
			Name: "covera_rate_limit_denied_total",
			Help: "Requests rejected by the rate limiter",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// Instrument counts requests passing through next.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(m.RequestsTotal, next)
}

func (m *Metrics) IncrementRateLimitDenied() {
	m.RateLimitDenied.Inc()
}
