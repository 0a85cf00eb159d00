package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"covera/internal/registry/models"
	id "covera/pkg/domain"
	"covera/pkg/platform/httputil"
	"covera/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the registry operations the handler needs.
type Service interface {
	RegisterPolicyholder(ctx context.Context, p models.NewPolicyholder) (models.Policyholder, error)
	SubmitClaim(ctx context.Context, c models.NewClaim) (models.Claim, error)
	GetPolicyholder(ctx context.Context, pid id.PolicyholderID) (models.Policyholder, error)
	ListPolicyholders(ctx context.Context) ([]models.Policyholder, error)
	ListClaims(ctx context.Context) ([]models.Claim, error)
}

// Handler wires registry endpoints to the registry service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts registry endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/policyholders", h.HandleRegisterPolicyholder)
	r.Get("/policyholders", h.HandleListPolicyholders)
	r.Get("/policyholders/{id}", h.HandleGetPolicyholder)
	r.Post("/claims", h.HandleSubmitClaim)
	r.Get("/claims", h.HandleListClaims)
}

// HandleRegisterPolicyholder handles POST /policyholders.
func (h *Handler) HandleRegisterPolicyholder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[RegisterPolicyholderRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	created, err := h.service.RegisterPolicyholder(ctx, req.ToModel())
	if err != nil {
		h.logger.ErrorContext(ctx, "policyholder registration failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, PolicyholderCreatedResponse{ID: created.ID, Policyholder: created})
}

// HandleSubmitClaim handles POST /claims.
func (h *Handler) HandleSubmitClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SubmitClaimRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	created, err := h.service.SubmitClaim(ctx, req.ToModel())
	if err != nil {
		h.logger.ErrorContext(ctx, "claim submission failed",
			"request_id", requestID,
			"policyholder_id", req.PolicyholderID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, ClaimCreatedResponse{ID: created.ID, Claim: created})
}

// HandleGetPolicyholder handles GET /policyholders/{id}.
func (h *Handler) HandleGetPolicyholder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pid, err := id.ParsePolicyholderID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	p, err := h.service.GetPolicyholder(ctx, pid)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, p)
}

// HandleListPolicyholders handles GET /policyholders.
func (h *Handler) HandleListPolicyholders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	all, err := h.service.ListPolicyholders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list policyholders",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, PolicyholderListResponse{Policyholders: all})
}

// HandleListClaims handles GET /claims.
func (h *Handler) HandleListClaims(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	all, err := h.service.ListClaims(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list claims",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ClaimListResponse{Claims: all})
}
