package routers

import (
	"bookadoc-service/internal/app/delivery/http/middlewares"
	"bookadoc-service/internal/app/services/specialties"
	"bookadoc-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func attachSpecialtyRoutes(router chi.Router, logger *zap.Logger, mw *middlewares.Middlewares, specialtyController *specialties.SpecialtyController) {
	router.MethodNotAllowed(methodNotAllowed(logger,
		constvars.MethodGet, constvars.MethodPost, constvars.MethodPatch, constvars.MethodDelete,
	))

	router.Get("/", specialtyController.GetSpecialties)
	router.Get("/{id}", specialtyController.GetSpecialtyByID)
	router.With(mw.Authenticate).Post("/", specialtyController.CreateSpecialty)
	router.With(mw.Authenticate).Patch("/{id}", specialtyController.UpdateSpecialty)
	router.With(mw.Authenticate).Delete("/{id}", specialtyController.DeleteSpecialty)
}
