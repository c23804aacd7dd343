package attendance

import "github.com/gofiber/fiber/v2"

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/saveAttendance", SaveAttendanceAPI)
	api.Get("/attendance/:studentId", GetAttendanceByStudentAPI)
}
