package reports

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"covera/internal/registry/models"
	"covera/internal/registry/store"
	"covera/internal/reports/metrics"
	id "covera/pkg/domain"
	dErrors "covera/pkg/domain-errors"
	"covera/pkg/requestcontext"
)

// Report names, used for cache keys and metric labels.
const (
	ReportClaimHistory  = "claim_history"
	ReportHighRisk      = "high_risk"
	ReportByType        = "by_type"
	ReportMonthly       = "monthly"
	ReportAverageByType = "average_by_type"
	ReportHighest       = "highest"
	ReportPending       = "pending"
	ReportSummary       = "summary"
)

// SnapshotSource is the read side of the record store.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (store.Snapshot, error)
	Revision(ctx context.Context) uint64
}

// ClaimHistory is the per-policyholder view.
type ClaimHistory struct {
	PolicyholderID id.PolicyholderID `json:"policyholder_id"`
	Claims         []models.Claim    `json:"claims"`
	Frequency      int               `json:"claim_frequency"`
	AmountSum      float64           `json:"claim_amount_sum"`
}

// RiskSummary bundles the risk analysis view.
type RiskSummary struct {
	HighRisk           []models.Policyholder             `json:"high_risk"`
	ClaimsByPolicyType *Grouping[models.PolicyType, int] `json:"claims_by_policy_type"`
}

// Service serves reports over the current store contents.
//
// Results are memoized per report, store revision, and calendar day, so a
// mutation or a date change makes older entries unreachable; the TTL only
// bounds memory.
type Service struct {
	source  SnapshotSource
	rule    RiskRule
	cache   *gocache.Cache
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithRiskRule(rule RiskRule) Option {
	return func(s *Service) {
		s.rule = rule
	}
}

// WithCache memoizes results for ttl. A non-positive ttl disables caching.
func WithCache(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl <= 0 {
			s.cache = nil
			return
		}
		s.cache = gocache.New(ttl, 2*ttl)
	}
}

// NewService constructs a report Service. Caching is off unless WithCache is
// given.
func NewService(source SnapshotSource, opts ...Option) *Service {
	s := &Service{
		source: source,
		rule:   DefaultRiskRule,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClaimHistory returns the claims, count, and amount total for pid. Unknown
// ids yield an empty history rather than an error.
func (s *Service) ClaimHistory(ctx context.Context, pid id.PolicyholderID) (*ClaimHistory, error) {
	return compute(ctx, s, ReportClaimHistory+":"+pid.String(), func(snap store.Snapshot, _ models.Date) *ClaimHistory {
		claims := ClaimsFor(snap, pid)
		return &ClaimHistory{
			PolicyholderID: pid,
			Claims:         claims,
			Frequency:      len(claims),
			AmountSum:      sumAmounts(claims),
		}
	})
}

func (s *Service) HighRiskPolicyholders(ctx context.Context) ([]models.Policyholder, error) {
	flagged, err := compute(ctx, s, ReportHighRisk, func(snap store.Snapshot, today models.Date) []models.Policyholder {
		return HighRiskPolicyholders(snap, today, s.rule)
	})
	if err == nil && s.metrics != nil {
		s.metrics.SetHighRiskCount(len(flagged))
	}
	return flagged, err
}

func (s *Service) ClaimsByPolicyType(ctx context.Context) (*Grouping[models.PolicyType, int], error) {
	return compute(ctx, s, ReportByType, func(snap store.Snapshot, _ models.Date) *Grouping[models.PolicyType, int] {
		return ClaimsByPolicyType(snap)
	})
}

func (s *Service) MonthlyClaims(ctx context.Context) (*Grouping[string, int], error) {
	return compute(ctx, s, ReportMonthly, func(snap store.Snapshot, _ models.Date) *Grouping[string, int] {
		return MonthlyClaims(snap)
	})
}

func (s *Service) AverageClaimByType(ctx context.Context) (*Grouping[models.PolicyType, float64], error) {
	return compute(ctx, s, ReportAverageByType, func(snap store.Snapshot, _ models.Date) *Grouping[models.PolicyType, float64] {
		return AverageClaimByType(snap)
	})
}

// HighestClaim returns nil when there are no claims.
func (s *Service) HighestClaim(ctx context.Context) (*models.Claim, error) {
	return compute(ctx, s, ReportHighest, func(snap store.Snapshot, _ models.Date) *models.Claim {
		c, ok := HighestClaim(snap)
		if !ok {
			return nil
		}
		return &c
	})
}

func (s *Service) PendingClaims(ctx context.Context) ([]models.Claim, error) {
	return compute(ctx, s, ReportPending, func(snap store.Snapshot, _ models.Date) []models.Claim {
		return PendingClaims(snap)
	})
}

// RiskSummary returns the high-risk list together with claim counts by type.
func (s *Service) RiskSummary(ctx context.Context) (*RiskSummary, error) {
	flagged, err := s.HighRiskPolicyholders(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := s.ClaimsByPolicyType(ctx)
	if err != nil {
		return nil, err
	}
	return &RiskSummary{HighRisk: flagged, ClaimsByPolicyType: byType}, nil
}

// compute runs fn against a fresh snapshot, or returns a memoized result for
// the same report, revision, and day.
func compute[T any](ctx context.Context, s *Service, report string, fn func(store.Snapshot, models.Date) T) (T, error) {
	today := models.DateOf(requestcontext.Now(ctx))

	if s.cache != nil {
		key := cacheKey(report, s.source.Revision(ctx), today)
		if v, found := s.cache.Get(key); found {
			if typed, ok := v.(T); ok {
				s.cacheHit()
				return typed, nil
			}
		}
		s.cacheMiss()
	}

	start := time.Now()
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		var zero T
		return zero, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read store snapshot")
	}
	result := fn(snap, today)

	if s.metrics != nil {
		s.metrics.ObserveReport(metricLabel(report), start)
	}
	s.logger.DebugContext(ctx, "report computed",
		"request_id", requestcontext.RequestID(ctx),
		"report", report,
		"revision", snap.Revision,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if s.cache != nil {
		s.cache.SetDefault(cacheKey(report, snap.Revision, today), result)
	}
	return result, nil
}

func cacheKey(report string, revision uint64, today models.Date) string {
	return fmt.Sprintf("%s@%d@%s", report, revision, today)
}

// metricLabel strips per-policyholder suffixes so label cardinality stays fixed.
func metricLabel(report string) string {
	name, _, _ := strings.Cut(report, ":")
	return name
}

func (s *Service) cacheHit() {
	if s.metrics != nil {
		s.metrics.IncrementCacheHit()
	}
}

func (s *Service) cacheMiss() {
	if s.metrics != nil {
		s.metrics.IncrementCacheMiss()
	}
}
