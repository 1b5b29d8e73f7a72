package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	CallerIDKey  contextKey = "caller_id"
)

const (
	RequestIDHeader = "X-Request-Id"
	// CallerIDHeader identifies the caller. It is recorded, never verified.
	CallerIDHeader = "X-User-Id"
)

// RequestContext stores the request id and caller id in the request
// context and echoes the request id back to the client.
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		if callerID := r.Header.Get(CallerIDHeader); callerID != "" {
			ctx = context.WithValue(ctx, CallerIDKey, callerID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestIDFromContext extracts the request id from context
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	return requestID, ok
}

// GetCallerIDFromContext extracts the X-User-Id value from context
func GetCallerIDFromContext(ctx context.Context) (string, bool) {
	callerID, ok := ctx.Value(CallerIDKey).(string)
	return callerID, ok
}
