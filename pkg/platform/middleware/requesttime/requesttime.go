// Package requesttime provides middleware for request-scoped time.
// All work within a single request shares one "now", so the risk window and
// default claim dates agree with each other.
package requesttime

import (
	"net/http"
	"time"

	"covera/pkg/requestcontext"
)

// Middleware captures the current UTC time at the start of the request
// and stores it in the context. Calendar dates derived from it are UTC days.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now().UTC())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
