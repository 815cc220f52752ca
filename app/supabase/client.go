package supabase

import (
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/postgrest-go"

	"github.com/vinch/crossfitchapelle/app/config"
)

// Client is a per-request handle to the Supabase backend. It bundles the
// GoTrue auth client and the PostgREST data client, both bound to the
// cookie jar of the request that created it. Handles are cheap to build
// and never shared between requests.
type Client struct {
	cfg  *config.Config
	jar  CookieJar
	auth gotrue.Client
	rest *postgrest.Client
}

// New builds a handle bound to the given cookie jar. No network traffic
// happens here; GoTrue and PostgREST are only contacted when the handle is
// used.
func New(cfg *config.Config, jar CookieJar) *Client {
	auth := gotrue.New("", cfg.SupabaseAnonKey).
		WithCustomGoTrueURL(cfg.SupabaseURL + "/auth/v1")
	rest := postgrest.NewClient(cfg.SupabaseURL+"/rest/v1", "public", map[string]string{
		"apikey": cfg.SupabaseAnonKey,
	})
	return &Client{cfg: cfg, jar: jar, auth: auth, rest: rest}
}

// From starts a PostgREST query against the given table. When the request
// carries a session, its access token is attached so row-level security
// sees the authenticated user.
func (c *Client) From(table string) *postgrest.QueryBuilder {
	rest := c.rest
	if access := c.cookieValue(cookieAccessToken); access != "" {
		// SetAuthToken mutates the receiver; safe only because the handle
		// is per-request.
		rest = rest.SetAuthToken(access)
	}
	return rest.From(table)
}

func (c *Client) cookieValue(name string) string {
	for _, ck := range c.jar.GetAll() {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}
