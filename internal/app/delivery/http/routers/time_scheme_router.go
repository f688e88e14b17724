package routers

import (
	"schoolbell-service/internal/app/delivery/http/controllers"
	"schoolbell-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTimeSchemeRoutes(router chi.Router, middlewares *middlewares.Middlewares, timeSchemeController *controllers.TimeSchemeController) {
	router.Get("/", timeSchemeController.Get)
	router.Get("/grid", timeSchemeController.FindDayGrid)
	router.Get("/periods/{lesson_number}", timeSchemeController.FindPeriod)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAPIKey)
		r.Put("/", timeSchemeController.Update)
		r.Post("/reset", timeSchemeController.Reset)
		r.Post("/breaks", timeSchemeController.AddBreak)
		r.Put("/breaks/{break_index}", timeSchemeController.UpdateBreak)
		r.Delete("/breaks/{break_index}", timeSchemeController.RemoveBreak)
	})
}
