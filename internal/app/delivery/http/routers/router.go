package routers

import (
	"fmt"
	"schoolbell-service/internal/app/config"
	"schoolbell-service/internal/app/delivery/http/controllers"
	"schoolbell-service/internal/app/delivery/http/middlewares"
	"schoolbell-service/internal/pkg/constvars"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	lessonController *controllers.LessonController,
	specificLessonController *controllers.SpecificLessonController,
	timeSchemeController *controllers.TimeSchemeController,
	liveStatusController *controllers.LiveStatusController,
	shareController *controllers.ShareController,
) {

	corsOptions := cors.Options{
		AllowedOrigins: allowedOrigins(internalConfig.App.AllowedOrigins),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			constvars.HeaderAccept,
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderXCSRFToken,
			constvars.HeaderXRequestID,
			constvars.HeaderAPIKey,
		},
		ExposedHeaders:   []string{"Link", constvars.HeaderXRequestID, constvars.HeaderContentDisposition},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.APIKeyAuth)
	router.Use(middlewares.ConditionalRateLimit(middlewares.CreateRateLimiter()))
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourceLessons, func(r chi.Router) {
				attachLessonRoutes(r, middlewares, lessonController)
			})

			r.Route("/"+constvars.ResourceSpecificLessons, func(r chi.Router) {
				attachSpecificLessonRoutes(r, middlewares, specificLessonController)
			})

			r.Route("/"+constvars.ResourceTimeScheme, func(r chi.Router) {
				attachTimeSchemeRoutes(r, middlewares, timeSchemeController)
			})

			r.Route("/"+constvars.ResourceStatus, func(r chi.Router) {
				attachStatusRoutes(r, middlewares, liveStatusController)
			})

			r.Route("/"+constvars.ResourceHomework, func(r chi.Router) {
				attachHomeworkRoutes(r, middlewares, liveStatusController)
			})

			r.Route("/"+constvars.ResourceShare, func(r chi.Router) {
				attachShareRoutes(r, middlewares, shareController)
			})
		})
	})
}

func allowedOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
