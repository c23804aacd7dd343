package homework

import "github.com/gofiber/fiber/v2"

func SetupHomeworkRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/saveHomework", SaveHomeworkAPI)
	api.Get("/homeworks/:classId", GetHomeworkByClassAPI)
	api.Post("/submitHomework", SubmitHomeworkAPI)
	api.Get("/submissions/:homeworkId", GetSubmissionsByHomeworkAPI)
}
