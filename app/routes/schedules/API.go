package schedules

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinch/crossfitchapelle/app/database"
	"github.com/vinch/crossfitchapelle/app/models"
	"github.com/vinch/crossfitchapelle/app/routes/auth"
)

// GetWeekScheduleAPI returns every slot joined with its course type,
// ordered by day then start hour.
func GetWeekScheduleAPI(c *fiber.Ctx) error {
	week, err := database.GetWeekSchedule(auth.Backend(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load schedules"})
	}
	return c.JSON(week)
}

func GetDayScheduleAPI(c *fiber.Ctx) error {
	dayParam, err := c.ParamsInt("day")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "day must be between 1 and 7"})
	}
	day := models.DayOfWeek(dayParam)
	if !day.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "day must be between 1 and 7"})
	}

	slots, err := database.GetSchedulesByDay(auth.Backend(c), day)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load schedules"})
	}
	return c.JSON(slots)
}

func CreateScheduleAPI(c *fiber.Ctx) error {
	var req models.ScheduleInsert
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	schedule, err := database.CreateSchedule(auth.Backend(c), &req)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create schedule"})
	}
	return c.Status(201).JSON(schedule)
}

func UpdateScheduleAPI(c *fiber.Ctx) error {
	var req models.ScheduleUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	schedule, err := database.UpdateSchedule(auth.Backend(c), c.Params("id"), &req)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update schedule"})
	}
	return c.JSON(schedule)
}

func DeleteScheduleAPI(c *fiber.Ctx) error {
	if err := database.DeleteSchedule(auth.Backend(c), c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete schedule"})
	}
	return c.JSON(fiber.Map{"success": true})
}
