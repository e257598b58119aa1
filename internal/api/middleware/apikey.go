package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/cryptoassets/portal/internal/api/response"
)

// APIKeyMiddleware guards internal endpoints with a static key. The expected
// key comes from the INTERNAL_API_KEY environment variable; when it is unset
// the guarded endpoints are disabled entirely.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := os.Getenv("INTERNAL_API_KEY")
		if expected == "" {
			response.RespondError(w, http.StatusServiceUnavailable, "internal API disabled", "")
			return
		}

		provided := r.Header.Get("X-API-Key")
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "invalid API key", "")
			return
		}

		next.ServeHTTP(w, r)
	})
}
