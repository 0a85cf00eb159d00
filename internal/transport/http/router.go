package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"covera/internal/platform/metrics"
	"covera/internal/platform/middleware"
	"covera/pkg/platform/httputil"
	"covera/pkg/platform/middleware/requestid"
	"covera/pkg/platform/middleware/requesttime"
)

// Registrar is implemented by feature handlers that mount their own routes.
type Registrar interface {
	Register(r chi.Router)
}

// Deps are the collaborators the router needs. Metrics and Limiter are optional.
type Deps struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Limiter  *middleware.RateLimiter
	Handlers []Registrar
}

// NewRouter wires the middleware chain, operational endpoints, and every
// feature handler. Operational endpoints bypass the rate limiter so scrapes and
// probes keep working under load.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(chimw.Recoverer)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Instrument)
	}
	r.Use(middleware.AccessLog(deps.Logger))

	r.Get("/healthz", handleHealth)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Group(func(r chi.Router) {
		if deps.Limiter != nil {
			r.Use(deps.Limiter.Handler)
		}
		for _, h := range deps.Handlers {
			h.Register(r)
		}
	})
	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
