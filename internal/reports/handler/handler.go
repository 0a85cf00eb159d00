package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"covera/internal/registry/models"
	"covera/internal/reports"
	id "covera/pkg/domain"
	"covera/pkg/platform/httputil"
	"covera/pkg/requestcontext"
)

// Service defines the report operations the handler needs.
type Service interface {
	ClaimHistory(ctx context.Context, pid id.PolicyholderID) (*reports.ClaimHistory, error)
	HighRiskPolicyholders(ctx context.Context) ([]models.Policyholder, error)
	ClaimsByPolicyType(ctx context.Context) (*reports.Grouping[models.PolicyType, int], error)
	MonthlyClaims(ctx context.Context) (*reports.Grouping[string, int], error)
	AverageClaimByType(ctx context.Context) (*reports.Grouping[models.PolicyType, float64], error)
	HighestClaim(ctx context.Context) (*models.Claim, error)
	PendingClaims(ctx context.Context) ([]models.Claim, error)
	RiskSummary(ctx context.Context) (*reports.RiskSummary, error)
}

// Handler wires report endpoints to the report service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts report endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/policyholders/{id}/claims", h.HandleClaimHistory)
	r.Route("/reports", func(r chi.Router) {
		r.Get("/high-risk", h.HandleHighRisk)
		r.Get("/by-type", h.HandleByType)
		r.Get("/monthly", h.HandleMonthly)
		r.Get("/average-by-type", h.HandleAverageByType)
		r.Get("/highest", h.HandleHighest)
		r.Get("/pending", h.HandlePending)
		r.Get("/summary", h.HandleSummary)
	})
}

// HandleClaimHistory handles GET /policyholders/{id}/claims.
func (h *Handler) HandleClaimHistory(w http.ResponseWriter, r *http.Request) {
	pid, err := id.ParsePolicyholderID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	history, err := h.service.ClaimHistory(r.Context(), pid)
	h.respond(w, r, reports.ReportClaimHistory, history, err)
}

// HandleHighRisk handles GET /reports/high-risk.
func (h *Handler) HandleHighRisk(w http.ResponseWriter, r *http.Request) {
	flagged, err := h.service.HighRiskPolicyholders(r.Context())
	h.respond(w, r, reports.ReportHighRisk, HighRiskResponse{Policyholders: flagged}, err)
}

// HandleByType handles GET /reports/by-type.
func (h *Handler) HandleByType(w http.ResponseWriter, r *http.Request) {
	byType, err := h.service.ClaimsByPolicyType(r.Context())
	h.respond(w, r, reports.ReportByType, byType, err)
}

// HandleMonthly handles GET /reports/monthly.
func (h *Handler) HandleMonthly(w http.ResponseWriter, r *http.Request) {
	monthly, err := h.service.MonthlyClaims(r.Context())
	h.respond(w, r, reports.ReportMonthly, monthly, err)
}

// HandleAverageByType handles GET /reports/average-by-type.
func (h *Handler) HandleAverageByType(w http.ResponseWriter, r *http.Request) {
	avg, err := h.service.AverageClaimByType(r.Context())
	h.respond(w, r, reports.ReportAverageByType, avg, err)
}

// HandleHighest handles GET /reports/highest. An empty store answers with
// {"claim": null}.
func (h *Handler) HandleHighest(w http.ResponseWriter, r *http.Request) {
	highest, err := h.service.HighestClaim(r.Context())
	h.respond(w, r, reports.ReportHighest, HighestClaimResponse{Claim: highest}, err)
}

// HandlePending handles GET /reports/pending.
func (h *Handler) HandlePending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.service.PendingClaims(r.Context())
	h.respond(w, r, reports.ReportPending, PendingClaimsResponse{Claims: pending}, err)
}

// HandleSummary handles GET /reports/summary.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.RiskSummary(r.Context())
	h.respond(w, r, reports.ReportSummary, summary, err)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, report string, body any, err error) {
	if err != nil {
		h.logger.ErrorContext(r.Context(), "report failed",
			"request_id", requestcontext.RequestID(r.Context()),
			"report", report,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, body)
}
