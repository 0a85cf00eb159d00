package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for report generation.
type Metrics struct {
	ReportDuration *prometheus.HistogramVec
	CacheLookups   *prometheus.CounterVec
	HighRiskCount  prometheus.Gauge
}

// New registers the report metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ReportDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "covera_report_duration_seconds",
			Help:    "Duration of report computation by report name",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"report"}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "covera_report_cache_lookups_total",
			Help: "Report cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss"
		HighRiskCount: factory.NewGauge(prometheus.GaugeOpts{
			Name: "covera_high_risk_policyholders",
			Help: "Number of policyholders flagged by the last high-risk computation",
		}),
	}
}

// ObserveReport records how long a report took to compute.
// Call with time.Now() at the start of the computation.
func (m *Metrics) ObserveReport(report string, start time.Time) {
	m.ReportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementCacheHit() {
	m.CacheLookups.WithLabelValues("hit").Inc()
}

func (m *Metrics) IncrementCacheMiss() {
	m.CacheLookups.WithLabelValues("miss").Inc()
}

func (m *Metrics) SetHighRiskCount(n int) {
	m.HighRiskCount.Set(float64(n))
}
