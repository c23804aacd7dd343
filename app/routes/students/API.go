package students

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"classtrack/app/config"
	"classtrack/app/database"
	"classtrack/app/models"
	"classtrack/app/validation"
)

// AddStudentAPI enrolls a student into a class. The grades mapping, usually
// empty at enrollment time, is serialized into the student row.
func AddStudentAPI(c *fiber.Ctx) error {
	type AddStudentRequest struct {
		FirstName string            `json:"firstName" validate:"required"`
		LastName  string            `json:"lastName" validate:"required"`
		Email     string            `json:"email" validate:"required,email"`
		Age       int               `json:"age" validate:"gte=0"`
		ClassID   int               `json:"classId"`
		Grades    map[string]string `json:"grades"`
	}

	var req AddStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student := &models.Student{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Age:       req.Age,
		ClassID:   req.ClassID,
	}
	err := database.CreateStudent(config.GetDB(), student, req.Grades)
	if err == database.ErrInvalidClassID {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid classId"})
	}
	if err != nil {
		log.Printf("Error adding student: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"message": "Student added successfully"})
}

// GetStudentsByClassAPI lists a class roster. Grades stay in their stored
// string form here; the by-email lookup is the one that deserializes.
func GetStudentsByClassAPI(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("classId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid class id"})
	}

	students, err := database.GetStudentsByClass(config.GetDB(), classID)
	if err != nil {
		log.Printf("Error fetching students for class %d: %v", classID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(students)
}

// GetStudentsByEmailAPI returns every enrollment for a student's email with
// the grades mapping deserialized.
func GetStudentsByEmailAPI(c *fiber.Ctx) error {
	email := c.Query("email")

	students, err := database.GetStudentsByEmail(config.GetDB(), email)
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"Error": "Student not found"})
	}
	if err != nil {
		log.Printf("Error retrieving student data: %v", err)
		return c.Status(500).JSON(fiber.Map{"Error": "Database error"})
	}
	return c.JSON(students)
}

// UpdateStudentGradesAPI replaces a student's stored grades mapping. Callers
// merge with the existing mapping before submitting.
func UpdateStudentGradesAPI(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student id"})
	}

	type UpdateGradesRequest struct {
		Grades map[string]string `json:"grades"`
	}
	var req UpdateGradesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := database.UpdateStudentGrades(config.GetDB(), studentID, req.Grades); err != nil {
		log.Printf("Error updating grades for student %d: %v", studentID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(fiber.Map{"message": "Grades updated successfully"})
}
