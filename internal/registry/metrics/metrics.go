package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"covera/internal/registry/models"
)

// Metrics provides observability for the registry module.
type Metrics struct {
	PolicyholdersRegistered *prometheus.CounterVec
	ClaimsSubmitted         *prometheus.CounterVec
	ClaimAmount             prometheus.Histogram
}

// New registers the registry metrics on reg. Pass a fresh prometheus.NewRegistry()
// in tests to avoid duplicate registration panics.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PolicyholdersRegistered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "covera_policyholders_registered_total",
			Help: "Total number of policyholders registered by policy type",
		}, []string{"policy_type"}),
		ClaimsSubmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "covera_claims_submitted_total",
			Help: "Total number of claims submitted by status",
		}, []string{"status"}),
		ClaimAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "covera_claim_amount",
			Help:    "Distribution of submitted claim amounts",
			Buckets: prometheus.ExponentialBuckets(100, 4, 8),
		}),
	}
}

// IncrementPolicyholderRegistered records a successful registration.
func (m *Metrics) IncrementPolicyholderRegistered(policyType models.PolicyType) {
	m.PolicyholdersRegistered.WithLabelValues(string(policyType)).Inc()
}

// ObserveClaimSubmitted records a successful claim submission.
func (m *Metrics) ObserveClaimSubmitted(status models.ClaimStatus, amount float64) {
	m.ClaimsSubmitted.WithLabelValues(string(status)).Inc()
	m.ClaimAmount.Observe(amount)
}
