package routers

import (
	"bookadoc-service/internal/app/delivery/http/middlewares"
	"bookadoc-service/internal/app/services/doctoravailabilities"
	"bookadoc-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachDoctorAvailabilityRoutes(router chi.Router, logger *zap.Logger, mw *middlewares.Middlewares, doctorAvailabilityController *doctoravailabilities.DoctorAvailabilityController) {
	router.MethodNotAllowed(methodNotAllowed(logger,
		constvars.MethodGet, constvars.MethodPost, constvars.MethodPatch, constvars.MethodDelete,
	))

	router.Get("/", doctorAvailabilityController.GetDoctorAvailabilities)
	router.Get("/{id}", doctorAvailabilityController.GetDoctorAvailabilityByID)
	router.With(mw.Authenticate).Post("/", doctorAvailabilityController.CreateDoctorAvailability)
	router.With(mw.Authenticate).Patch("/{id}", doctorAvailabilityController.UpdateDoctorAvailability)
	router.With(mw.Authenticate).Delete("/{id}", doctorAvailabilityController.DeleteDoctorAvailability)
}
