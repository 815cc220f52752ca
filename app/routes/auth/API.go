package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// CallbackAPI completes the OAuth handshake: it trades the one-time code
// for a session and leaves through a redirect on every path. Nothing is
// ever rendered here.
func CallbackAPI(c *fiber.Ctx) error {
	code := c.Query("code")
	next := c.Query("next", AdminPath)

	if code != "" {
		if _, err := Backend(c).ExchangeCode(code); err == nil {
			return c.Redirect(next, fiber.StatusSeeOther)
		} else {
			log.Printf("auth: code exchange failed: %v", err)
		}
	}

	return c.Redirect(LoginPath, fiber.StatusSeeOther)
}

// OAuthStartAPI begins the provider sign-in leg: it builds the authorize
// URL (parking the PKCE verifier in a cookie for the callback) and sends
// the browser to the provider.
func OAuthStartAPI(c *fiber.Ctx) error {
	url, err := Backend(c).AuthorizeURL(c.Params("provider"))
	if err != nil {
		log.Printf("auth: authorize url failed: %v", err)
		return c.Redirect(LoginPath, fiber.StatusSeeOther)
	}
	return c.Redirect(url, fiber.StatusSeeOther)
}

// LogoutAPI clears the session cookies and returns to the login page.
func LogoutAPI(c *fiber.Ctx) error {
	Backend(c).SignOut()
	return c.Redirect(LoginPath, fiber.StatusSeeOther)
}
