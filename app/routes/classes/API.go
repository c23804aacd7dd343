package classes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"classtrack/app/config"
	"classtrack/app/database"
	"classtrack/app/models"
	"classtrack/app/validation"
)

// CreateClassAPI inserts a class and its weighted tasks in one transaction.
// Task weights are not required to sum to 100; only negative weights are
// rejected.
func CreateClassAPI(c *fiber.Ctx) error {
	type TaskRequest struct {
		TaskName   string `json:"taskName" validate:"required"`
		Percentage int    `json:"percentage" validate:"gte=0,lte=100"`
	}
	type CreateClassRequest struct {
		Name         string        `json:"cname" validate:"required"`
		Code         string        `json:"id"`
		Description  string        `json:"description"`
		Tasks        []TaskRequest `json:"tasks" validate:"dive"`
		TeacherEmail string        `json:"teacher_email" validate:"required,email"`
	}

	var req CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"Error": "Invalid request"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"Error": err.Error()})
	}

	class := &models.Class{
		Name:         req.Name,
		Code:         req.Code,
		Description:  req.Description,
		TeacherEmail: req.TeacherEmail,
	}
	tasks := make([]*models.Task, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		tasks = append(tasks, &models.Task{TaskName: t.TaskName, Percentage: t.Percentage})
	}

	if err := database.CreateClassWithTasks(config.GetDB(), class, tasks); err != nil {
		log.Printf("Error inserting class: %v", err)
		return c.Status(500).JSON(fiber.Map{"Error": "Database error"})
	}

	if len(tasks) > 0 {
		return c.JSON(fiber.Map{"Message": "Class and tasks saved successfully!"})
	}
	return c.JSON(fiber.Map{"Message": "Class saved successfully without tasks!"})
}

func GetClassesAPI(c *fiber.Ctx) error {
	classes, err := database.GetAllClasses(config.GetDB())
	if err != nil {
		log.Printf("Error fetching classes: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(classes)
}

func GetClassesByTeacherAPI(c *fiber.Ctx) error {
	email := c.Params("email")
	classes, err := database.GetClassesByTeacher(config.GetDB(), email)
	if err != nil {
		log.Printf("Error fetching classes for teacher %s: %v", email, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(classes)
}

func GetClassNameAPI(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("cid")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid class id"})
	}

	cname, err := database.GetClassName(config.GetDB(), classID)
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}
	if err != nil {
		log.Printf("Error retrieving class %d: %v", classID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"className": cname})
}

func GetTasksByClassAPI(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("classId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid class id"})
	}

	tasks, err := database.GetTasksByClass(config.GetDB(), classID)
	if err != nil {
		log.Printf("Error fetching tasks for class %d: %v", classID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(tasks)
}
