package handler

import (
	"github.com/gofiber/fiber/v2"

	"quizsheet/internal/middleware"
)

// RegisterRoutes mounts the API under /api and the health check at /health.
func RegisterRoutes(app *fiber.App, quiz *QuizHandler, health *HealthHandler, vm *middleware.ValidationMiddleware) {
	app.Get("/health", health.Health)

	api := app.Group("/api")
	api.Get("/options", quiz.GetOptions)

	quizzes := api.Group("/quizzes")
	quizzes.Post("/", quiz.GenerateQuiz)
	quizzes.Get("/:id", vm.ValidateResultID(), quiz.GetQuizResult)
	quizzes.Get("/:id/:format", vm.ValidateResultID(), vm.ValidateFormat(), quiz.DownloadQuiz)
}
