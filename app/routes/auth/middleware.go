package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/vinch/crossfitchapelle/app/config"
	"github.com/vinch/crossfitchapelle/app/supabase"
)

// LoginPath is the one admin page reachable without a session.
const LoginPath = "/admin/login"

// AdminPath is the landing page after a successful sign-in.
const AdminPath = "/admin"

const localsClientKey = "supabase"

// WithBackend runs before any route logic. It binds a fresh Supabase handle
// to the request's cookie jar and stores it in the request locals, and
// strips the storage layer's Content-Range header from the response on the
// way out.
func WithBackend(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localsClientKey, supabase.New(cfg, supabase.NewFiberJar(c)))
		c.Locals("request_id", uuid.New().String())

		err := c.Next()

		c.Response().Header.Del(fiber.HeaderContentRange)
		return err
	}
}

// Backend returns the request's Supabase handle set up by WithBackend.
func Backend(c *fiber.Ctx) *supabase.Client {
	return c.Locals(localsClientKey).(*supabase.Client)
}

// Decision is the outcome of the auth gate for one request: either proceed,
// or short-circuit with a redirect. Keeping it a plain value keeps the
// control flow auditable.
type Decision struct {
	RedirectTo string
	Status     int
}

// Proceed reports whether the request may continue to route logic.
func (d Decision) Proceed() bool {
	return d.RedirectTo == ""
}

// DecideAdminAccess applies the gate rule: without a session every admin
// path except the login page redirects there. The login page passes
// unconditionally, otherwise a locked-out admin could never sign in.
func DecideAdminAccess(path string, hasSession bool) Decision {
	if hasSession || strings.HasPrefix(path, LoginPath) {
		return Decision{}
	}
	return Decision{RedirectTo: LoginPath, Status: fiber.StatusSeeOther}
}

// RequireSession gates the admin section and the JSON API. Web requests
// without a session are redirected to the login page; API requests get a
// 401 instead. The session (possibly nil on the login page) is exposed to
// downstream handlers through the locals.
func RequireSession(c *fiber.Ctx) error {
	session, err := Backend(c).Session()
	if err != nil {
		return err
	}

	decision := DecideAdminAccess(c.Path(), session != nil)
	if !decision.Proceed() {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not signed in"})
		}
		return c.Redirect(decision.RedirectTo, decision.Status)
	}

	if session != nil {
		c.Locals("session", session)
		c.Locals("user_email", session.Email)
	}
	return c.Next()
}

// SessionFrom returns the session stored by RequireSession, or nil when the
// request is unauthenticated (only possible on the login page).
func SessionFrom(c *fiber.Ctx) *supabase.Session {
	if s, ok := c.Locals("session").(*supabase.Session); ok {
		return s
	}
	return nil
}
