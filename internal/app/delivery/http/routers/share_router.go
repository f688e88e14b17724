package routers

import (
	"schoolbell-service/internal/app/delivery/http/controllers"
	"schoolbell-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachShareRoutes(router chi.Router, middlewares *middlewares.Middlewares, shareController *controllers.ShareController) {
	router.Get("/export", shareController.Export)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAPIKey)
		r.Post("/import", shareController.Import)
		r.Post("/import/file", shareController.ImportFile)
		r.Post("/export/archive", shareController.ExportArchive)
	})
}
