package routers

import (
	"bookadoc-service/internal/app/delivery/http/middlewares"
	"bookadoc-service/internal/app/services/doctorcentres"
	"bookadoc-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachDoctorCentreRoutes(router chi.Router, logger *zap.Logger, mw *middlewares.Middlewares, doctorCentreController *doctorcentres.DoctorCentreController) {
	router.MethodNotAllowed(methodNotAllowed(logger,
		constvars.MethodGet, constvars.MethodPost, constvars.MethodPatch, constvars.MethodDelete,
	))

	router.Get("/", doctorCentreController.GetDoctorCentres)
	router.Get("/{id}", doctorCentreController.GetDoctorCentreByID)
	router.With(mw.Authenticate).Post("/", doctorCentreController.CreateDoctorCentre)
	router.With(mw.Authenticate).Patch("/{id}", doctorCentreController.UpdateDoctorCentre)
	router.With(mw.Authenticate).Delete("/{id}", doctorCentreController.DeleteDoctorCentre)
}
