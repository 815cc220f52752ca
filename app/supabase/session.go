package supabase

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/supabase-community/gotrue-go/types"
)

// Cookie names are an app-internal convention; the token values inside are
// owned by GoTrue and treated as opaque.
const (
	cookieAccessToken  = "sb-access-token"
	cookieRefreshToken = "sb-refresh-token"
	cookieCodeVerifier = "sb-code-verifier"
)

// refreshMargin forces a refresh slightly before the access token actually
// expires, so a token that dies mid-request is never handed out.
const refreshMargin = 30 * time.Second

const refreshTokenTTL = 30 * 24 * time.Hour

// Session is the authenticated-user state carried by the request cookies.
type Session struct {
	AccessToken  string
	RefreshToken string
	Email        string
	ExpiresAt    time.Time
}

// Session returns the current session, refreshing it through GoTrue when
// the access token has expired. It returns (nil, nil) when the request
// carries no usable session: missing cookies and rejected refresh tokens
// both mean "not signed in", they are not errors.
func (c *Client) Session() (*Session, error) {
	access := c.cookieValue(cookieAccessToken)
	refresh := c.cookieValue(cookieRefreshToken)
	if access == "" && refresh == "" {
		return nil, nil
	}

	if access != "" {
		if s := sessionFromToken(access, refresh); s != nil {
			return s, nil
		}
	}
	if refresh == "" {
		return nil, nil
	}

	resp, err := c.auth.Token(types.TokenRequest{
		GrantType:    "refresh_token",
		RefreshToken: refresh,
	})
	if err != nil {
		// A stale or revoked refresh token is the normal way a session
		// ends; clear the cookies and let the gate send the user to login.
		log.Printf("supabase: refresh rejected, treating as signed out: %v", err)
		c.clearSessionCookies()
		return nil, nil
	}

	c.persistSession(&resp.Session)
	return sessionFromResponse(&resp.Session), nil
}

// ExchangeCode completes the PKCE handshake, trading the one-time
// authorization code (plus the verifier parked in a cookie by AuthorizeURL)
// for a session. On success the new session cookies are written through the
// jar.
func (c *Client) ExchangeCode(code string) (*Session, error) {
	resp, err := c.auth.Token(types.TokenRequest{
		GrantType:    "pkce",
		Code:         code,
		CodeVerifier: c.cookieValue(cookieCodeVerifier),
	})
	if err != nil {
		return nil, fmt.Errorf("exchange code for session: %w", err)
	}

	c.persistSession(&resp.Session)
	c.expireCookie(cookieCodeVerifier)
	return sessionFromResponse(&resp.Session), nil
}

// AuthorizeURL builds the provider sign-in URL for the PKCE flow and parks
// the generated code verifier in a short-lived cookie for the callback leg.
func (c *Client) AuthorizeURL(provider string) (string, error) {
	resp, err := c.auth.Authorize(types.AuthorizeRequest{
		Provider: types.Provider(provider),
		FlowType: types.FlowPKCE,
	})
	if err != nil {
		return "", fmt.Errorf("build authorize url: %w", err)
	}

	// The request struct carries no return address; GoTrue reads it from
	// the redirect_to query parameter.
	u, err := url.Parse(resp.AuthorizationURL)
	if err != nil {
		return "", fmt.Errorf("build authorize url: %w", err)
	}
	q := u.Query()
	q.Set("redirect_to", c.cfg.SiteURL+"/auth/callback")
	u.RawQuery = q.Encode()

	c.setCookies([]Cookie{{
		Name:    cookieCodeVerifier,
		Value:   resp.Verifier,
		Options: &CookieOptions{MaxAge: 600},
	}})
	return u.String(), nil
}

// SignOut drops the session cookies. The tokens themselves expire on the
// GoTrue side; nothing here needs to wait for that.
func (c *Client) SignOut() {
	c.clearSessionCookies()
}

func (c *Client) persistSession(s *types.Session) {
	maxAge := s.ExpiresIn
	if maxAge <= 0 {
		maxAge = 3600
	}
	c.setCookies([]Cookie{
		{Name: cookieAccessToken, Value: s.AccessToken, Options: &CookieOptions{MaxAge: maxAge}},
		{Name: cookieRefreshToken, Value: s.RefreshToken, Options: &CookieOptions{MaxAge: int(refreshTokenTTL.Seconds())}},
	})
}

// setCookies writes through the jar, swallowing failures. A concurrent
// refresh in the same logical request may already have written a newer
// pair, in which case losing this write is harmless; the line below keeps
// it observable.
func (c *Client) setCookies(cookies []Cookie) {
	if err := c.jar.SetAll(cookies); err != nil {
		log.Printf("supabase: dropped cookie write: %v", err)
	}
}

func (c *Client) clearSessionCookies() {
	expired := &CookieOptions{MaxAge: -1, Expires: time.Now().Add(-time.Hour)}
	c.setCookies([]Cookie{
		{Name: cookieAccessToken, Options: expired},
		{Name: cookieRefreshToken, Options: expired},
	})
}

func (c *Client) expireCookie(name string) {
	c.setCookies([]Cookie{{
		Name:    name,
		Options: &CookieOptions{MaxAge: -1, Expires: time.Now().Add(-time.Hour)},
	}})
}

// sessionFromToken inspects the access token locally so an unexpired
// session costs no network round-trip. The signature is not checked here;
// GoTrue issued the token and PostgREST re-verifies it on every query.
func sessionFromToken(access, refresh string) *Session {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if time.Until(exp.Time) < refreshMargin {
		return nil
	}
	email, _ := claims["email"].(string)
	return &Session{
		AccessToken:  access,
		RefreshToken: refresh,
		Email:        email,
		ExpiresAt:    exp.Time,
	}
}

func sessionFromResponse(s *types.Session) *Session {
	return &Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		Email:        s.User.Email,
		ExpiresAt:    time.Now().Add(time.Duration(s.ExpiresIn) * time.Second),
	}
}
