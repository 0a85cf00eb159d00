// Package requestid tags every request with an identifier for log correlation.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"covera/pkg/requestcontext"
)

// Header is echoed on responses and honored on requests when present.
const Header = "X-Request-ID"

// maxInboundLength caps caller-supplied ids so they cannot bloat log lines.
const maxInboundLength = 128

// Middleware reuses an inbound X-Request-ID or generates a UUID.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(Header)
		if reqID == "" || len(reqID) > maxInboundLength {
			reqID = uuid.NewString()
		}
		w.Header().Set(Header, reqID)
		ctx := requestcontext.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
