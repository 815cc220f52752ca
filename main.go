package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/vinch/crossfitchapelle/app/config"
	"github.com/vinch/crossfitchapelle/app/routes/admin"
	"github.com/vinch/crossfitchapelle/app/routes/auth"
	"github.com/vinch/crossfitchapelle/app/routes/coursetypes"
	"github.com/vinch/crossfitchapelle/app/routes/schedules"
)

// customErrorHandler renders an error page for web requests and JSON for
// the API.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	if code == fiber.StatusNotFound {
		return c.Status(code).Render("404", fiber.Map{
			"Title":       "Page introuvable - CrossFit Chapelle",
			"CurrentPage": "",
		})
	}

	log.Printf("request %v failed: %v", c.Locals("request_id"), err)
	return c.Status(code).Render("error", fiber.Map{
		"Title":       "Erreur - CrossFit Chapelle",
		"CurrentPage": "",
		"ErrorCode":   code,
	})
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// Initialize template engine
	engine := html.New("./app/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(auth.WithBackend(cfg))

	// Static files
	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(auth.AdminPath, fiber.StatusSeeOther)
	})

	auth.SetupAuthRoutes(app)
	admin.SetupAdminRoutes(app)
	coursetypes.SetupCourseTypesRoutes(app)
	schedules.SetupSchedulesRoutes(app)

	go func() {
		log.Printf("Listening on %s", cfg.ListenAddr)
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
