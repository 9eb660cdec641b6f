package routers

import (
	"bookadoc-service/internal/app/delivery/http/middlewares"
	"bookadoc-service/internal/app/services/availabilities"
	"bookadoc-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachAvailabilityRoutes(router chi.Router, logger *zap.Logger, mw *middlewares.Middlewares, availabilityController *availabilities.AvailabilityController) {
	router.MethodNotAllowed(methodNotAllowed(logger,
		constvars.MethodGet, constvars.MethodPost, constvars.MethodPatch, constvars.MethodDelete,
	))

	router.Get("/", availabilityController.GetAvailabilities)
	router.Get("/{id}", availabilityController.GetAvailabilityByID)
	router.With(mw.Authenticate).Post("/", availabilityController.CreateAvailability)
	router.With(mw.Authenticate).Patch("/{id}", availabilityController.UpdateAvailability)
	router.With(mw.Authenticate).Delete("/{id}", availabilityController.DeleteAvailability)
}
