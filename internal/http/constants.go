package httpx

// Cookie names used by the auth flow.
const (
	CookieSession           = "session_id"
	CookieOAuthState        = "oauth_state"
	CookieOAuthNonce        = "oauth_nonce"
	CookiePostLoginRedirect = "post_login_redirect"
)
