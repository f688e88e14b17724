package routers

import (
	"schoolbell-service/internal/app/delivery/http/controllers"
	"schoolbell-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachLessonRoutes(router chi.Router, middlewares *middlewares.Middlewares, lessonController *controllers.LessonController) {
	router.Get("/", lessonController.FindAll)
	router.Get("/{lesson_id}", lessonController.FindByID)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAPIKey)
		r.Post("/", lessonController.Create)
		r.Put("/{lesson_id}", lessonController.Update)
		r.Put("/{lesson_id}/homework", lessonController.UpdateHomework)
		r.Delete("/{lesson_id}", lessonController.Delete)
	})
}
