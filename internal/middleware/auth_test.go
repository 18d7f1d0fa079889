package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"identity-service/internal/auth"
	"identity-service/internal/session"

	"github.com/stretchr/testify/require"
)

func guardedEcho(t *testing.T, tokens *auth.TokenManager) http.Handler {
	t.Helper()

	guard := NewAuthGuard(tokens)

	return guard.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		require.NotEmpty(t, claims.Email)
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRequireAuthNoCookie(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()

	guardedEcho(t, tokens).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"ok":false,"error":"Unauthorized"}`, w.Body.String())
}

func TestRequireAuthValidCookie(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	token, _, err := tokens.Issue("Ada", "ada@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	w := httptest.NewRecorder()

	guardedEcho(t, tokens).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthExpiredCookie(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	expiredIssuer := auth.NewTokenManager("test-secret", -time.Hour)

	token, _, err := expiredIssuer.Issue("Ada", "ada@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	w := httptest.NewRecorder()

	guardedEcho(t, tokens).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthTamperedCookie(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	forger := auth.NewTokenManager("other-secret", time.Hour)

	token, _, err := forger.Issue("Ada", "ada@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	w := httptest.NewRecorder()

	guardedEcho(t, tokens).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
