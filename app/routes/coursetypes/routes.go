package coursetypes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinch/crossfitchapelle/app/routes/auth"
)

func SetupCourseTypesRoutes(app *fiber.App) {
	api := app.Group("/api/course-types")
	api.Use(auth.RequireSession)

	api.Get("/", GetCourseTypesAPI)
	api.Post("/", CreateCourseTypeAPI)
	api.Get("/:id", GetCourseTypeAPI)
	api.Put("/:id", UpdateCourseTypeAPI)
	api.Delete("/:id", DeleteCourseTypeAPI)
}
