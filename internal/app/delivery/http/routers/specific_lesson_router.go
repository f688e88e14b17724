package routers

import (
	"schoolbell-service/internal/app/delivery/http/controllers"
	"schoolbell-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSpecificLessonRoutes(router chi.Router, middlewares *middlewares.Middlewares, specificLessonController *controllers.SpecificLessonController) {
	router.Get("/", specificLessonController.FindAll)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAPIKey)
		r.Post("/", specificLessonController.Create)
		r.Put("/{specific_lesson_id}", specificLessonController.Update)
		r.Delete("/{specific_lesson_id}", specificLessonController.Delete)
	})
}
