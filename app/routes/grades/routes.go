package grades

import "github.com/gofiber/fiber/v2"

func SetupGradesRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/grades/student/:studentId", GetStudentFinalGradeAPI)
	api.Get("/grades/class/:classId", GetClassFinalGradesAPI)
	api.Get("/grades/class/:classId/export", ExportClassGradesAPI)
}
