// Package middleware provides HTTP middleware for the API: request
// tracing and bearer-token authentication.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/blackbird-crm/crm-api/internal/api/shared"
)

// TraceIDHeader is the header used to propagate and return the trace id.
const TraceIDHeader = "X-Trace-ID"

// TraceID assigns each request a trace id, reusing the inbound header value
// when present, and echoes it back on the response.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}

		w.Header().Set(TraceIDHeader, traceID)

		ctx := context.WithValue(r.Context(), shared.TraceIDContextKey, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
