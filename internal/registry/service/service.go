package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"covera/internal/audit"
	"covera/internal/registry/metrics"
	"covera/internal/registry/models"
	"covera/internal/registry/store"
	id "covera/pkg/domain"
	dErrors "covera/pkg/domain-errors"
	"covera/pkg/requestcontext"
)

// maxTextLength bounds free-text fields in strict mode.
const maxTextLength = 512

type Store interface {
	CreatePolicyholder(ctx context.Context, p models.NewPolicyholder) (models.Policyholder, error)
	CreateClaim(ctx context.Context, c models.NewClaim) (models.Claim, error)
	FindPolicyholder(ctx context.Context, pid id.PolicyholderID) (models.Policyholder, error)
	ListPolicyholders(ctx context.Context) ([]models.Policyholder, error)
	ListClaims(ctx context.Context) ([]models.Claim, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service orchestrates policyholder registration and claim submission.
//
// By default every input is accepted as-is and claims may reference
// policyholders that do not exist. WithStrictMode turns on range checks and
// referential checks.
type Service struct {
	store          Store
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	strict         bool
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithStrictMode rejects negative numbers and claims against unknown
// policyholders.
func WithStrictMode(strict bool) Option {
	return func(s *Service) {
		s.strict = strict
	}
}

// New constructs a Service.
func New(st Store, opts ...Option) *Service {
	s := &Service{store: st, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterPolicyholder stores a new policyholder and returns it with its
// assigned id.
func (s *Service) RegisterPolicyholder(ctx context.Context, p models.NewPolicyholder) (models.Policyholder, error) {
	p.Name = strings.TrimSpace(p.Name)
	if s.strict {
		if err := validatePolicyholder(p); err != nil {
			return models.Policyholder{}, err
		}
	}

	created, err := s.store.CreatePolicyholder(ctx, p)
	if err != nil {
		return models.Policyholder{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to register policyholder")
	}

	s.logger.InfoContext(ctx, "policyholder registered",
		"request_id", requestcontext.RequestID(ctx),
		"policyholder_id", created.ID,
		"policy_type", created.PolicyType,
	)
	s.emitAudit(ctx, audit.Event{
		Action:  audit.ActionPolicyholderRegistered,
		Subject: created.ID.String(),
		Detail:  string(created.PolicyType),
	})
	if s.metrics != nil {
		s.metrics.IncrementPolicyholderRegistered(created.PolicyType)
	}
	return created, nil
}

// SubmitClaim stores a new claim and returns it with its assigned id. A zero
// date defaults to the request's calendar day.
func (s *Service) SubmitClaim(ctx context.Context, c models.NewClaim) (models.Claim, error) {
	c.Reason = strings.TrimSpace(c.Reason)
	if c.Date.IsZero() {
		c.Date = models.DateOf(requestcontext.Now(ctx))
	}
	if s.strict {
		if err := s.validateClaim(ctx, c); err != nil {
			return models.Claim{}, err
		}
	}

	created, err := s.store.CreateClaim(ctx, c)
	if err != nil {
		return models.Claim{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to submit claim")
	}

	s.logger.InfoContext(ctx, "claim submitted",
		"request_id", requestcontext.RequestID(ctx),
		"claim_id", created.ID,
		"policyholder_id", created.PolicyholderID,
		"status", created.Status,
	)
	s.emitAudit(ctx, audit.Event{
		Action:  audit.ActionClaimSubmitted,
		Subject: created.ID.String(),
		Detail:  "policyholder " + created.PolicyholderID.String(),
	})
	if s.metrics != nil {
		s.metrics.ObserveClaimSubmitted(created.Status, created.Amount)
	}
	return created, nil
}

// GetPolicyholder fetches one policyholder.
func (s *Service) GetPolicyholder(ctx context.Context, pid id.PolicyholderID) (models.Policyholder, error) {
	p, err := s.store.FindPolicyholder(ctx, pid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Policyholder{}, dErrors.New(dErrors.CodeNotFound, "policyholder not found")
		}
		return models.Policyholder{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load policyholder")
	}
	return p, nil
}

// ListPolicyholders returns policyholders in registration order.
func (s *Service) ListPolicyholders(ctx context.Context) ([]models.Policyholder, error) {
	all, err := s.store.ListPolicyholders(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list policyholders")
	}
	return all, nil
}

// ListClaims returns claims in submission order.
func (s *Service) ListClaims(ctx context.Context) ([]models.Claim, error) {
	all, err := s.store.ListClaims(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list claims")
	}
	return all, nil
}

func validatePolicyholder(p models.NewPolicyholder) error {
	if len(p.Name) > maxTextLength {
		return dErrors.New(dErrors.CodeValidation, "name is too long")
	}
	if p.Age <= 0 {
		return dErrors.New(dErrors.CodeValidation, "age must be positive")
	}
	if p.SumInsured < 0 {
		return dErrors.New(dErrors.CodeValidation, "sum_insured must not be negative")
	}
	return nil
}

func (s *Service) validateClaim(ctx context.Context, c models.NewClaim) error {
	if len(c.Reason) > maxTextLength {
		return dErrors.New(dErrors.CodeValidation, "reason is too long")
	}
	if c.Amount < 0 {
		return dErrors.New(dErrors.CodeValidation, "amount must not be negative")
	}
	if _, err := s.GetPolicyholder(ctx, c.PolicyholderID); err != nil {
		return err
	}
	return nil
}

// emitAudit never fails the mutation; a lost audit event is logged instead.
func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.auditPublisher == nil {
		return
	}
	event.RequestID = requestcontext.RequestID(ctx)
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"request_id", event.RequestID,
			"action", event.Action,
			"error", err,
		)
	}
}
