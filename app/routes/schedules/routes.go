package schedules

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinch/crossfitchapelle/app/routes/auth"
)

func SetupSchedulesRoutes(app *fiber.App) {
	api := app.Group("/api/schedules")
	api.Use(auth.RequireSession)

	api.Get("/", GetWeekScheduleAPI)
	api.Get("/day/:day", GetDayScheduleAPI)
	api.Post("/", CreateScheduleAPI)
	api.Put("/:id", UpdateScheduleAPI)
	api.Delete("/:id", DeleteScheduleAPI)
}
