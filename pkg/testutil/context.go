package testutil

import (
	"net/http"
	"time"

	"covera/pkg/requestcontext"
)

// WithRequestTime pins the request-scoped "now" the way the requesttime
// middleware would, so date-dependent reports are deterministic.
func WithRequestTime(req *http.Request, at time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), at))
}

// WithRequestID sets the request id the way the requestid middleware would.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
