package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cryptoassets/portal/internal/api/response"
	"github.com/cryptoassets/portal/internal/service"
)

type contextKey string

const userIDContextKey contextKey = "userID"

// Auth returns a middleware that requires a valid Bearer session token and
// places the authenticated user ID in the request context.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.RespondError(w, http.StatusUnauthorized, "authorization header required", "")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" {
				response.RespondError(w, http.StatusUnauthorized, "malformed authorization header", "")
				return
			}

			userID, err := authService.Authenticate(token)
			if err != nil {
				response.RespondError(w, http.StatusUnauthorized, "invalid or expired session", "")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID returns a context carrying the authenticated user ID.
// Exposed so handler tests can authenticate requests without the middleware.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserIDFromContext extracts the authenticated user ID placed by Auth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	return userID, ok && userID != ""
}
