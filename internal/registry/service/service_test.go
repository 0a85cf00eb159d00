package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"covera/internal/audit"
	"covera/internal/registry/metrics"
	"covera/internal/registry/models"
	"covera/internal/registry/store"
	id "covera/pkg/domain"
	dErrors "covera/pkg/domain-errors"
	"covera/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx       context.Context
	store     *store.InMemory
	publisher *audit.Publisher
	metrics   *metrics.Metrics
	service   *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC))
	s.ctx = requestcontext.WithRequestID(s.ctx, "req-1")
	s.store = store.NewInMemory()
	s.publisher = audit.NewPublisher(audit.NewInMemoryStore())
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = New(s.store, WithAuditPublisher(s.publisher), WithMetrics(s.metrics))
}

func (s *ServiceSuite) TestRegisterPolicyholder() {
	s.Run("assigns sequential ids", func() {
		for want := 1; want <= 3; want++ {
			p, err := s.service.RegisterPolicyholder(s.ctx, models.NewPolicyholder{
				Name:       "  Asha  ",
				Age:        30,
				PolicyType: models.PolicyTypeLife,
				SumInsured: 5000,
			})
			s.Require().NoError(err)
			s.Equal(id.PolicyholderID(want), p.ID)
			s.Equal("Asha", p.Name)
		}
		s.Equal(3.0, promtest.ToFloat64(s.metrics.PolicyholdersRegistered.WithLabelValues("Life")))
	})

	s.Run("permissive mode accepts out-of-range values", func() {
		_, err := s.service.RegisterPolicyholder(s.ctx, models.NewPolicyholder{
			Name:       "Zero",
			Age:        -1,
			PolicyType: models.PolicyTypeHealth,
			SumInsured: -10,
		})
		s.NoError(err)
	})

	s.Run("emits audit events with request id", func() {
		events, err := s.publisher.List(s.ctx)
		s.Require().NoError(err)
		s.Require().NotEmpty(events)
		s.Equal(audit.ActionPolicyholderRegistered, events[0].Action)
		s.Equal("1", events[0].Subject)
		s.Equal("req-1", events[0].RequestID)
	})
}

func (s *ServiceSuite) TestSubmitClaim() {
	s.Run("accepts claims for unknown policyholders", func() {
		c, err := s.service.SubmitClaim(s.ctx, models.NewClaim{
			PolicyholderID: 77,
			Amount:         250,
			Status:         models.ClaimStatusPending,
			Date:           models.NewDate(2025, time.January, 2),
		})
		s.Require().NoError(err)
		s.Equal(id.ClaimID(1), c.ID)
		s.Equal(id.PolicyholderID(77), c.PolicyholderID)
	})

	s.Run("defaults date to request day", func() {
		c, err := s.service.SubmitClaim(s.ctx, models.NewClaim{
			PolicyholderID: 1,
			Amount:         10,
			Status:         models.ClaimStatusApproved,
		})
		s.Require().NoError(err)
		s.Equal(id.ClaimID(2), c.ID)
		s.Equal("2025-07-15", c.Date.String())
	})

	s.Run("records metrics by status", func() {
		s.Equal(1.0, promtest.ToFloat64(s.metrics.ClaimsSubmitted.WithLabelValues("Pending")))
		s.Equal(1.0, promtest.ToFloat64(s.metrics.ClaimsSubmitted.WithLabelValues("Approved")))
	})
}

func (s *ServiceSuite) TestStrictMode() {
	strict := New(s.store, WithStrictMode(true))

	s.Run("rejects non-positive age", func() {
		_, err := strict.RegisterPolicyholder(s.ctx, models.NewPolicyholder{Name: "x", Age: 0, PolicyType: models.PolicyTypeLife})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects overlong name", func() {
		_, err := strict.RegisterPolicyholder(s.ctx, models.NewPolicyholder{Name: strings.Repeat("x", 513), Age: 20})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects overlong reason", func() {
		_, err := strict.SubmitClaim(s.ctx, models.NewClaim{PolicyholderID: 1, Reason: strings.Repeat("r", 513)})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects negative sum insured", func() {
		_, err := strict.RegisterPolicyholder(s.ctx, models.NewPolicyholder{Name: "x", Age: 20, SumInsured: -1})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects negative amount", func() {
		_, err := strict.SubmitClaim(s.ctx, models.NewClaim{PolicyholderID: 1, Amount: -5})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects unknown policyholder", func() {
		_, err := strict.SubmitClaim(s.ctx, models.NewClaim{PolicyholderID: 999, Amount: 5})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("accepts valid claim against registered policyholder", func() {
		p, err := strict.RegisterPolicyholder(s.ctx, models.NewPolicyholder{Name: "ok", Age: 20, PolicyType: models.PolicyTypeVehicle, SumInsured: 100})
		s.Require().NoError(err)
		_, err = strict.SubmitClaim(s.ctx, models.NewClaim{PolicyholderID: p.ID, Amount: 5, Status: models.ClaimStatusPending})
		s.NoError(err)
	})
}

func (s *ServiceSuite) TestGetPolicyholder() {
	_, err := s.service.GetPolicyholder(s.ctx, 1)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	created, err := s.service.RegisterPolicyholder(s.ctx, models.NewPolicyholder{Name: "Ben", Age: 50, PolicyType: models.PolicyTypeHealth})
	s.Require().NoError(err)
	found, err := s.service.GetPolicyholder(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created, found)
}

type failingStore struct{ *store.InMemory }

var errStoreDown = errors.New("store down")

func (f *failingStore) CreateClaim(context.Context, models.NewClaim) (models.Claim, error) {
	return models.Claim{}, errStoreDown
}

func (s *ServiceSuite) TestStoreFailuresAreInternal() {
	svc := New(&failingStore{InMemory: store.NewInMemory()})
	_, err := svc.SubmitClaim(s.ctx, models.NewClaim{PolicyholderID: 1})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	s.ErrorIs(err, errStoreDown)
}
