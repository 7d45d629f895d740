package auth

import (
	"context"
	"net/http"

	"MiniLibrary/pkg/kit"
)

type ctxKey string

const claimsKey ctxKey = "claims"

func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(claimsKey).(Claims)
	return c, ok
}

// RequireRole rejects requests without a valid bearer token for role.
// A nil maker lets every request through.
func RequireRole(tm *TokenMaker, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if tm == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok, ok := kit.BearerToken(r)
			if !ok {
				kit.WriteError(w, r, http.StatusUnauthorized, "missing token", nil)
				return
			}

			claims, err := tm.Parse(tok)
			if err != nil {
				kit.WriteError(w, r, http.StatusUnauthorized, "invalid token", nil)
				return
			}
			if claims.Role != role {
				kit.WriteError(w, r, http.StatusForbidden, "forbidden", map[string]any{"required_role": role})
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
