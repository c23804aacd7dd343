package grades

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"

	"classtrack/app/config"
	"classtrack/app/database"
)

// StudentFinal is one student's computed final grade within a class.
type StudentFinal struct {
	StudentID  int     `json:"student_id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	FinalGrade float64 `json:"final_grade"`
}

// GetStudentFinalGradeAPI computes the final grade for a single student from
// their stored grades, their class's task weights, and their attendance.
func GetStudentFinalGradeAPI(c *fiber.Ctx) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student id"})
	}

	db := config.GetDB()
	student, err := database.GetStudentByID(db, studentID)
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		log.Printf("Error fetching student %d: %v", studentID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	tasks, err := database.GetTasksByClass(db, student.ClassID)
	if err != nil {
		log.Printf("Error fetching tasks for class %d: %v", student.ClassID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	attendance, err := database.GetAttendanceByStudent(db, studentID)
	if err != nil {
		log.Printf("Error fetching attendance for student %d: %v", studentID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	return c.JSON(StudentFinal{
		StudentID:  student.ID,
		FirstName:  student.FirstName,
		LastName:   student.LastName,
		FinalGrade: FinalGrade(student.ParseGrades(), tasks, attendance),
	})
}

// classFinals computes per-student final grades for a whole class.
func classFinals(db *sql.DB, classID int) ([]StudentFinal, error) {
	students, err := database.GetStudentsByClass(db, classID)
	if err != nil {
		return nil, err
	}
	tasks, err := database.GetTasksByClass(db, classID)
	if err != nil {
		return nil, err
	}

	finals := make([]StudentFinal, 0, len(students))
	for _, student := range students {
		attendance, err := database.GetAttendanceByStudent(db, student.ID)
		if err != nil {
			return nil, err
		}
		finals = append(finals, StudentFinal{
			StudentID:  student.ID,
			FirstName:  student.FirstName,
			LastName:   student.LastName,
			FinalGrade: FinalGrade(student.ParseGrades(), tasks, attendance),
		})
	}
	return finals, nil
}

// GetClassFinalGradesAPI returns every student's final grade in a class plus
// the class average.
func GetClassFinalGradesAPI(c *fiber.Ctx) error {
	classID, err := c.ParamsInt("classId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid class id"})
	}

	finals, err := classFinals(config.GetDB(), classID)
	if err != nil {
		log.Printf("Error computing final grades for class %d: %v", classID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}

	values := make([]float64, len(finals))
	for i, f := range finals {
		values[i] = f.FinalGrade
	}

	return c.JSON(fiber.Map{
		"students": finals,
		"average":  ClassAverage(values),
	})
}
