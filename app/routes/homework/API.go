package homework

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"classtrack/app/config"
	"classtrack/app/database"
	"classtrack/app/models"
	"classtrack/app/routes/auth"
)

// storeUpload writes an uploaded file into the upload directory under a
// timestamped name and returns the stored path.
func storeUpload(c *fiber.Ctx, field string) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fileHeader.Filename))
	path := filepath.Join(config.AppConfig.UploadDir, name)
	if err := c.SaveFile(fileHeader, path); err != nil {
		return "", err
	}
	return path, nil
}

// SaveHomeworkAPI stores a homework assignment posted by a teacher. The
// attachment is optional; when present its stored path is recorded with the
// row.
func SaveHomeworkAPI(c *fiber.Ctx) error {
	classID, err := strconv.Atoi(c.FormValue("classId"))
	if err != nil || classID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid classId"})
	}

	title := c.FormValue("title")
	if title == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Title is required"})
	}

	submissionDate, err := time.Parse("2006-01-02", c.FormValue("submissionDate"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	filePath := ""
	if _, err := c.FormFile("file"); err == nil {
		filePath, err = storeUpload(c, "file")
		if err != nil {
			log.Printf("Error storing homework file: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save homework"})
		}
	}

	hw := &models.Homework{
		ClassID:        classID,
		Title:          title,
		Description:    c.FormValue("description"),
		SubmissionDate: submissionDate,
		FilePath:       filePath,
	}
	if err := database.CreateHomework(config.GetDB(), hw); err != nil {
		log.Printf("Error saving homework: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save homework"})
	}

	return c.JSON(fiber.Map{"message": "Homework saved successfully"})
}

func GetHomeworkByClassAPI(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("classId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid class id"})
	}

	homeworks, err := database.GetHomeworkByClass(config.GetDB(), classID)
	if err != nil {
		log.Printf("Error fetching homeworks for class %d: %v", classID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(homeworks)
}

// SubmitHomeworkAPI accepts a student's homework upload and records the
// submission. The upstream implementation acknowledged the upload without
// writing anything; a submission row is persisted here so teachers can see
// who handed in what.
func SubmitHomeworkAPI(c *fiber.Ctx) error {
	homeworkID, err := strconv.Atoi(c.FormValue("homeworkId"))
	if err != nil || homeworkID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid homeworkId"})
	}

	filePath, err := storeUpload(c, "file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing file"})
	}

	sub := &models.HomeworkSubmission{
		HomeworkID: homeworkID,
		FilePath:   filePath,
	}
	if claims := auth.ClaimsFromRequest(c); claims != nil {
		sub.StudentEmail = &claims.Email
	}

	if err := database.CreateHomeworkSubmission(config.GetDB(), sub); err != nil {
		log.Printf("Error saving homework submission: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit homework"})
	}

	return c.JSON(fiber.Map{"message": "Homework submitted successfully"})
}

func GetSubmissionsByHomeworkAPI(c *fiber.Ctx) error {
	homeworkID, err := c.ParamsInt("homeworkId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid homework id"})
	}

	subs, err := database.GetSubmissionsByHomework(config.GetDB(), homeworkID)
	if err != nil {
		log.Printf("Error fetching submissions for homework %d: %v", homeworkID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(subs)
}
