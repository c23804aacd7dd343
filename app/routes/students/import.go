package students

import (
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"classtrack/app/config"
	"classtrack/app/database"
	"classtrack/app/models"
)

// ImportStudentsAPI bulk-enrolls students into a class from an uploaded
// spreadsheet. Expected columns: firstName, lastName, email, age. A header
// row is skipped when its first cell is not a name, and blank rows are
// ignored; each remaining row goes through the same insert path as a single
// enrollment.
func ImportStudentsAPI(c *fiber.Ctx) error {
	classID, err := strconv.Atoi(c.FormValue("classId"))
	if err != nil || classID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid classId"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing file"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Failed to read file"})
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Failed to open excel file"})
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing excel file: %v", err)
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Excel file does not contain any sheets"})
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Failed to read rows"})
	}

	imported := 0
	skipped := 0
	for i, row := range rows {
		if len(row) < 3 || strings.TrimSpace(row[0]) == "" {
			skipped++
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(row[0]), "firstName") {
			continue
		}

		age := 0
		if len(row) > 3 {
			age, _ = strconv.Atoi(strings.TrimSpace(row[3]))
		}

		student := &models.Student{
			FirstName: strings.TrimSpace(row[0]),
			LastName:  strings.TrimSpace(row[1]),
			Email:     strings.TrimSpace(row[2]),
			Age:       age,
			ClassID:   classID,
		}
		if err := database.CreateStudent(config.GetDB(), student, nil); err != nil {
			log.Printf("Error importing student %s: %v", student.Email, err)
			skipped++
			continue
		}
		imported++
	}

	return c.JSON(fiber.Map{
		"message":  "Import completed",
		"imported": imported,
		"skipped":  skipped,
	})
}
