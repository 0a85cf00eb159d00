// Package middleware holds server-wide HTTP middleware.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	dErrors "covera/pkg/domain-errors"
	"covera/pkg/platform/httputil"
	"covera/pkg/requestcontext"
)

// RateLimiter is a single token bucket shared by every client. The store is
// process-local, so one bucket bounds the load on its lock.
type RateLimiter struct {
	limiter *rate.Limiter
	logger  *slog.Logger
	onDeny  func()
}

type Option func(*RateLimiter)

// WithDenyHook runs fn for every rejected request, typically a metric.
func WithDenyHook(fn func()) Option {
	return func(rl *RateLimiter) {
		rl.onDeny = fn
	}
}

// NewRateLimiter allows rps requests per second with the given burst. A
// non-positive rps disables limiting.
func NewRateLimiter(rps float64, burst int, logger *slog.Logger, opts ...Option) *RateLimiter {
	rl := &RateLimiter{logger: logger}
	if rps > 0 {
		rl.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	if rl.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.limiter.Allow() {
			rl.logger.WarnContext(r.Context(), "rate limit exceeded",
				"request_id", requestcontext.RequestID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
			)
			if rl.onDeny != nil {
				rl.onDeny()
			}
			w.Header().Set("Retry-After", strconv.Itoa(1))
			httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "too many requests, retry later"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
