package grades

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"classtrack/app/config"
	"classtrack/app/database"
)

// ExportClassGradesAPI writes a class grade sheet as an .xlsx download: one
// row per student with each task's raw grade and the computed final grade,
// closed by a class-average row.
func ExportClassGradesAPI(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("classId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid class id"})
	}

	db := config.GetDB()
	students, err := database.GetStudentsByClass(db, classID)
	if err != nil {
		log.Printf("Error fetching students for class %d: %v", classID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	tasks, err := database.GetTasksByClass(db, classID)
	if err != nil {
		log.Printf("Error fetching tasks for class %d: %v", classID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing excel file: %v", err)
		}
	}()
	sheet := f.GetSheetName(0)

	setCell := func(col, row int, value interface{}) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		f.SetCellValue(sheet, cell, value)
	}

	setCell(1, 1, "First Name")
	setCell(2, 1, "Last Name")
	for i, task := range tasks {
		setCell(3+i, 1, fmt.Sprintf("%s (%d%%)", task.TaskName, task.Percentage))
	}
	setCell(3+len(tasks), 1, "Final Grade")

	finals := make([]float64, 0, len(students))
	for i, student := range students {
		attendance, err := database.GetAttendanceByStudent(db, student.ID)
		if err != nil {
			log.Printf("Error fetching attendance for student %d: %v", student.ID, err)
			return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
		}

		grades := student.ParseGrades()
		row := i + 2
		setCell(1, row, student.FirstName)
		setCell(2, row, student.LastName)
		for j, task := range tasks {
			key := fmt.Sprintf("%s-%d", task.TaskName, task.Percentage)
			setCell(3+j, row, grades[key])
		}

		final := FinalGrade(grades, tasks, attendance)
		finals = append(finals, final)
		setCell(3+len(tasks), row, final)
	}

	setCell(1, len(students)+2, "Class Average")
	setCell(3+len(tasks), len(students)+2, ClassAverage(finals))

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("Error writing excel file: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to export grades"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="class-%d-grades.xlsx"`, classID))
	return c.Send(buf.Bytes())
}
