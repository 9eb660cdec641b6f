package routers

import (
	"bookadoc-service/internal/app/delivery/http/middlewares"
	"bookadoc-service/internal/app/services/medicalcentres"
	"bookadoc-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachMedicalCentreRoutes(router chi.Router, logger *zap.Logger, mw *middlewares.Middlewares, medicalCentreController *medicalcentres.MedicalCentreController) {
	router.MethodNotAllowed(methodNotAllowed(logger,
		constvars.MethodGet, constvars.MethodPost, constvars.MethodPatch, constvars.MethodDelete,
	))

	router.Get("/", medicalCentreController.GetMedicalCentres)
	router.Get("/{id}", medicalCentreController.GetMedicalCentreByID)
	router.With(mw.Authenticate).Post("/", medicalCentreController.CreateMedicalCentre)
	router.With(mw.Authenticate).Patch("/{id}", medicalCentreController.UpdateMedicalCentre)
	router.With(mw.Authenticate).Delete("/{id}", medicalCentreController.DeleteMedicalCentre)
}
