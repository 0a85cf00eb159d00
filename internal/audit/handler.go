package audit

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	dErrors "covera/pkg/domain-errors"
	"covera/pkg/platform/httputil"
	"covera/pkg/requestcontext"
)

// Lister is the read side of a publisher.
type Lister interface {
	List(ctx context.Context) ([]Event, error)
}

// Handler exposes the recorded audit trail.
type Handler struct {
	events Lister
	logger *slog.Logger
}

func NewHandler(events Lister, logger *slog.Logger) *Handler {
	return &Handler{events: events, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/audit", h.HandleList)
}

// EventListResponse wraps events in append order.
type EventListResponse struct {
	Events []Event `json:"events"`
}

// HandleList handles GET /audit.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	events, err := h.events.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list audit events",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit events"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, EventListResponse{Events: events})
}
