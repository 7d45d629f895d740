package kit

import (
	"crypto/subtle"
	"net/http"
)

// MetricsAuth only lets through requests carrying the exact bearer token.
// An empty token closes the endpoint entirely.
func MetricsAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := BearerToken(r)
			if token == "" || !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				WriteError(w, r, http.StatusForbidden, "forbidden", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
