package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/RajatCoding/jktech-assignment/internal/user"
)

// Authenticator resolves a bearer token to the acting user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*user.User, error)
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// RequireAuth rejects requests without a valid bearer token and stores the
// resolved user in the request context.
func RequireAuth(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				w.Header().Set("WWW-Authenticate", "Bearer")
				Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Could not validate credentials", nil)
				return
			}

			u, err := a.Authenticate(r.Context(), token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				Error(w, http.StatusUnauthorized, "UNAUTHORIZED", "Could not validate credentials", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), u)))
		})
	}
}

// RequireAdmin is RequireAuth plus an admin-role check.
func RequireAdmin(a Authenticator) func(http.Handler) http.Handler {
	requireAuth := RequireAuth(a)
	return func(next http.Handler) http.Handler {
		return requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := UserFrom(r)
			if u == nil || !u.IsAdmin {
				Error(w, http.StatusForbidden, "FORBIDDEN", "Not enough permissions. Admin access required.", nil)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
