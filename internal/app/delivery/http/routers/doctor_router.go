package routers

import (
	"bookadoc-service/internal/app/delivery/http/middlewares"
	"bookadoc-service/internal/app/services/doctors"
	"bookadoc-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachDoctorRoutes(router chi.Router, logger *zap.Logger, mw *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.MethodNotAllowed(methodNotAllowed(logger,
		constvars.MethodGet, constvars.MethodPost, constvars.MethodPatch, constvars.MethodDelete,
	))

	router.Get("/", doctorController.GetDoctors)
	router.Get("/{id}", doctorController.GetDoctorByID)
	router.Get("/{id}/availabilities", doctorController.GetAvailableTimes)
	router.Post("/", doctorController.CreateDoctor)
	router.With(mw.Authenticate).Patch("/{id}", doctorController.UpdateDoctor)
	router.With(mw.Authenticate).Delete("/{id}", doctorController.DeleteDoctor)
}
