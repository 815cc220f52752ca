package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinch/crossfitchapelle/app/database"
	"github.com/vinch/crossfitchapelle/app/models"
	"github.com/vinch/crossfitchapelle/app/routes/auth"
)

func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin")
	admin.Use(auth.RequireSession)

	admin.Get("/login", LoginPage)
	admin.Get("/", DashboardPage)
	admin.Get("/course-types", CourseTypesPage)
	admin.Get("/schedules", SchedulesPage)
}

func LoginPage(c *fiber.Ctx) error {
	// Already signed in, nothing to do here.
	if auth.SessionFrom(c) != nil {
		return c.Redirect(auth.AdminPath, fiber.StatusSeeOther)
	}

	return c.Render("admin/login", fiber.Map{
		"Title": "Connexion - CrossFit Chapelle",
	}, "")
}

func DashboardPage(c *fiber.Ctx) error {
	client := auth.Backend(c)

	courseTypes, err := database.GetAllCourseTypes(client)
	if err != nil {
		return err
	}
	week, err := database.GetWeekSchedule(client)
	if err != nil {
		return err
	}

	return c.Render("admin/dashboard", fiber.Map{
		"Title":           "Administration - CrossFit Chapelle",
		"CurrentPage":     "dashboard",
		"CourseTypeCount": len(courseTypes),
		"ScheduleCount":   len(week),
	})
}

func CourseTypesPage(c *fiber.Ctx) error {
	courseTypes, err := database.GetAllCourseTypes(auth.Backend(c))
	if err != nil {
		return err
	}

	return c.Render("admin/course_types", fiber.Map{
		"Title":       "Types de cours - CrossFit Chapelle",
		"CurrentPage": "course-types",
		"CourseTypes": courseTypes,
	})
}

func SchedulesPage(c *fiber.Ctx) error {
	client := auth.Backend(c)

	week, err := database.GetWeekSchedule(client)
	if err != nil {
		return err
	}
	courseTypes, err := database.GetAllCourseTypes(client)
	if err != nil {
		return err
	}

	// Group slots per day so the template renders a weekly grid.
	days := make([]fiber.Map, len(models.DaysOfWeek))
	for i, name := range models.DaysOfWeek {
		day := models.DayOfWeek(i + 1)
		var slots []*models.ScheduleWithCourseType
		for _, s := range week {
			if s.Day == day {
				slots = append(slots, s)
			}
		}
		days[i] = fiber.Map{"Name": name, "Day": int(day), "Slots": slots}
	}

	return c.Render("admin/schedules", fiber.Map{
		"Title":       "Horaires - CrossFit Chapelle",
		"CurrentPage": "schedules",
		"Days":        days,
		"CourseTypes": courseTypes,
	})
}
