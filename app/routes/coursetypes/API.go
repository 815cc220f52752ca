package coursetypes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vinch/crossfitchapelle/app/database"
	"github.com/vinch/crossfitchapelle/app/models"
	"github.com/vinch/crossfitchapelle/app/routes/auth"
)

func GetCourseTypesAPI(c *fiber.Ctx) error {
	courseTypes, err := database.GetAllCourseTypes(auth.Backend(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load course types"})
	}
	return c.JSON(courseTypes)
}

func GetCourseTypeAPI(c *fiber.Ctx) error {
	courseType, err := database.GetCourseTypeByID(auth.Backend(c), c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Course type not found"})
	}
	return c.JSON(courseType)
}

func CreateCourseTypeAPI(c *fiber.Ctx) error {
	var req models.CourseTypeInsert
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	courseType, err := database.CreateCourseType(auth.Backend(c), &req)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create course type"})
	}
	return c.Status(201).JSON(courseType)
}

func UpdateCourseTypeAPI(c *fiber.Ctx) error {
	var req models.CourseTypeUpdate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := req.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	courseType, err := database.UpdateCourseType(auth.Backend(c), c.Params("id"), &req)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update course type"})
	}
	return c.JSON(courseType)
}

func DeleteCourseTypeAPI(c *fiber.Ctx) error {
	// Schedules referencing this type are protected by the foreign key;
	// the backend rejects the delete and we surface that as a conflict.
	if err := database.DeleteCourseType(auth.Backend(c), c.Params("id")); err != nil {
		return c.Status(409).JSON(fiber.Map{"error": "Course type is still in use"})
	}
	return c.JSON(fiber.Map{"success": true})
}
