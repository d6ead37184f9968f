// Package shared provides helpers common to all API handlers: JSON
// responses, request decoding/validation and context keys.
package shared

import "context"

// contextKey is a private type for context keys defined in this package.
type contextKey int

const (
	// UserEmailContextKey is the context key under which the auth
	// middleware stores the authenticated user's email.
	UserEmailContextKey contextKey = iota

	// TraceIDContextKey is the context key under which the trace
	// middleware stores the request's trace id.
	TraceIDContextKey
)

// GetTraceID returns the trace id stored in the context, or an empty
// string if none is present.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}

// GetUserEmail returns the authenticated user's email stored in the
// context, or an empty string if none is present.
func GetUserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(UserEmailContextKey).(string); ok {
		return email
	}
	return ""
}
