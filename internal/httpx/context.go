package httpx

import (
	"context"
	"net/http"

	"github.com/RajatCoding/jktech-assignment/internal/user"
)

type contextKey string

const (
	userKey      contextKey = "user"
	requestIDKey contextKey = "requestID"
)

// UserFrom retrieves the authenticated user from the request context, or nil
// when the request did not pass auth middleware.
func UserFrom(r *http.Request) *user.User {
	if u, ok := r.Context().Value(userKey).(*user.User); ok {
		return u
	}
	return nil
}

// ContextWithUser returns a new context carrying the authenticated user.
func ContextWithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRequestID returns a new context carrying the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
