package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/keyhaven/crm-ui-api/internal/domain/auth"
)

func cookieByName(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAuthLogin_RedirectsToProviderWithCookies(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)

	rec := srv.do(httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=/dashboard", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "https://mock-idp/auth", rec.Header().Get("Location"))

	state := cookieByName(t, rec, CookieOAuthState)
	require.NotNil(t, state)
	require.Equal(t, "state-1", state.Value)
	nonce := cookieByName(t, rec, CookieOAuthNonce)
	require.NotNil(t, nonce)
	require.Equal(t, "nonce-1", nonce.Value)
	redirect := cookieByName(t, rec, CookiePostLoginRedirect)
	require.NotNil(t, redirect)
	require.Equal(t, "/dashboard", redirect.Value)
}

func TestAuthLogin_AbsoluteRedirectFallsBackToRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)

	rec := srv.do(httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=https://evil.example/", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	redirect := cookieByName(t, rec, CookiePostLoginRedirect)
	require.NotNil(t, redirect)
	require.Equal(t, "/", redirect.Value)
}

func TestAuthCallback_SetsSessionAndRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=state-1", nil)
	req.AddCookie(&http.Cookie{Name: CookieOAuthState, Value: "state-1"})
	req.AddCookie(&http.Cookie{Name: CookieOAuthNonce, Value: "nonce-1"})
	req.AddCookie(&http.Cookie{Name: CookiePostLoginRedirect, Value: "/dashboard"})
	rec := srv.do(req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))

	session := cookieByName(t, rec, CookieSession)
	require.NotNil(t, session)
	require.NotEmpty(t, session.Value)
	require.True(t, session.HttpOnly)

	// Temporary OAuth cookies are cleared.
	state := cookieByName(t, rec, CookieOAuthState)
	require.NotNil(t, state)
	require.Empty(t, state.Value)
	require.Negative(t, state.MaxAge)
}

func TestAuthCallback_StateMismatchIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=forged", nil)
	req.AddCookie(&http.Cookie{Name: CookieOAuthState, Value: "state-1"})
	req.AddCookie(&http.Cookie{Name: CookieOAuthNonce, Value: "nonce-1"})
	rec := srv.do(req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid_state")
}

func TestAuthStatus_ReportsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `"authenticated":true`)
	require.Contains(t, body, testPrincipal)
}

func TestAuthStatus_NoSessionReportsUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)

	rec := srv.do(httptest.NewRequest(http.MethodGet, "/auth/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"authenticated":false}`, rec.Body.String())
}

func TestAuthLogout_ClearsSessionCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, ctrl)
	cookie := srv.signIn(t, domainauth.RoleAgent)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", strings.NewReader(""))
	req.AddCookie(cookie)
	rec := srv.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	cleared := cookieByName(t, rec, CookieSession)
	require.NotNil(t, cleared)
	require.Empty(t, cleared.Value)
	require.Negative(t, cleared.MaxAge)

	// The server-side session is gone too.
	status := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	status.AddCookie(cookie)
	rec = srv.do(status)
	require.JSONEq(t, `{"authenticated":false}`, rec.Body.String())
}
