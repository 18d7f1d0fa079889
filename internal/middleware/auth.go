package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"identity-service/internal/auth"
	"identity-service/internal/session"
)

// unexported, collision-proof context key
type claimsContextKeyType struct{}

var claimsKey = claimsContextKeyType{}

// ClaimsFromContext extracts the authenticated session claims from context.
func ClaimsFromContext(ctx context.Context) (*auth.SessionClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.SessionClaims)
	return claims, ok
}

// AuthGuard converts a session-token cookie into an authenticated identity
// or a 401. It never refreshes or re-issues tokens.
type AuthGuard struct {
	Tokens *auth.TokenManager
}

func NewAuthGuard(tokens *auth.TokenManager) *AuthGuard {
	return &AuthGuard{Tokens: tokens}
}

func (g *AuthGuard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read the session cookie; no cookie means no codec call
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			unauthorized(w)
			return
		}

		// 2. Verify the token; invalid and expired are both rejections
		claims, err := g.Tokens.Verify(cookie.Value)
		if err != nil {
			unauthorized(w)
			return
		}

		// 3. Attach claims to context
		ctx := context.WithValue(r.Context(), claimsKey, claims)

		// 4. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"ok":    false,
		"error": "Unauthorized",
	})
}
