package attendance

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"classtrack/app/config"
	"classtrack/app/database"
	"classtrack/app/models"
)

// SaveAttendanceAPI stores a batch of attendance records. Saving the same
// (class, student, date) key again overwrites the status instead of adding
// a duplicate row.
func SaveAttendanceAPI(c *fiber.Ctx) error {
	type AttendanceRequest struct {
		ClassID   int    `json:"class_id"`
		StudentID int    `json:"student_id"`
		Status    string `json:"status"`
		Date      string `json:"date"`
	}

	var reqs []AttendanceRequest
	if err := c.BodyParser(&reqs); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	records := make([]*models.Attendance, 0, len(reqs))
	for _, req := range reqs {
		if req.ClassID == 0 || req.StudentID == 0 {
			return c.Status(400).JSON(fiber.Map{"error": "class_id and student_id are required"})
		}

		status := models.AttendanceStatus(req.Status)
		if !status.IsValid() {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid status. Must be select, here, or not_here"})
		}

		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}

		records = append(records, &models.Attendance{
			ClassID:   req.ClassID,
			StudentID: req.StudentID,
			Status:    status,
			Date:      date,
		})
	}

	if err := database.SaveAttendance(config.GetDB(), records); err != nil {
		log.Printf("Error saving attendance: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance"})
	}

	return c.JSON(fiber.Map{"message": "Attendance saved successfully"})
}

func GetAttendanceByStudentAPI(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student id"})
	}

	records, err := database.GetAttendanceByStudent(config.GetDB(), studentID)
	if err != nil {
		log.Printf("Error fetching attendance for student %d: %v", studentID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(records)
}
