package auth

import (
	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Get("/callback", CallbackAPI)
	auth.Get("/login/:provider", OAuthStartAPI)
	auth.Post("/logout", LogoutAPI)
}
