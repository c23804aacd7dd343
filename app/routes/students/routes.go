package students

import "github.com/gofiber/fiber/v2"

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/students", AddStudentAPI)
	api.Post("/students/import", ImportStudentsAPI)
	api.Get("/students", GetStudentsByEmailAPI)
	api.Get("/students/:classId", GetStudentsByClassAPI)
	api.Put("/students/:id", UpdateStudentGradesAPI)
}
