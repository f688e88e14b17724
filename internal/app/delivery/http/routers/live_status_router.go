package routers

import (
	"schoolbell-service/internal/app/delivery/http/controllers"
	"schoolbell-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachStatusRoutes(router chi.Router, middlewares *middlewares.Middlewares, liveStatusController *controllers.LiveStatusController) {
	router.Get("/", liveStatusController.GetStatus)
	router.Get("/overview", liveStatusController.GetOverview)
}

func attachHomeworkRoutes(router chi.Router, middlewares *middlewares.Middlewares, liveStatusController *controllers.LiveStatusController) {
	router.Get("/due", liveStatusController.FindHomeworkDue)
}
