package classes

import "github.com/gofiber/fiber/v2"

func SetupClassesRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/classes", CreateClassAPI)
	api.Get("/classes", GetClassesAPI)
	// The upstream API registered both lookups on /api/classes/:param and told
	// them apart by argument shape. They get distinct paths here.
	api.Get("/classes/by-teacher/:email", GetClassesByTeacherAPI)
	api.Get("/classes/by-id/:cid", GetClassNameAPI)

	api.Get("/tasks/:classId", GetTasksByClassAPI)
}
