package middleware

import "context"

// contextKey is a type used for context keys to avoid string key collisions
type contextKey string

// Context keys for middleware
const (
	RequestIDKey contextKey = "request_id"
)

// RequestIDHeader carries the request id in and out
const RequestIDHeader = "X-Request-ID"

// RequestIDFromContext returns the request id stored by RequestIDMiddleware
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
