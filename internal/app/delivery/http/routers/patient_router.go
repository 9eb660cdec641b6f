package routers

import (
	"bookadoc-service/internal/app/delivery/http/middlewares"
	"bookadoc-service/internal/app/services/patients"
	"bookadoc-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Patient reads and sign-up are public; the profile view and every mutation
// require a bearer token.
func attachPatientRoutes(router chi.Router, logger *zap.Logger, mw *middlewares.Middlewares, patientController *patients.PatientController) {
	router.MethodNotAllowed(methodNotAllowed(logger,
		constvars.MethodGet, constvars.MethodPost, constvars.MethodPatch, constvars.MethodDelete,
	))

	router.With(mw.Authenticate).Get("/profile", patientController.GetProfile)
	router.Get("/", patientController.GetPatients)
	router.Get("/{id}", patientController.GetPatientByID)
	router.Post("/", patientController.CreatePatient)
	router.With(mw.Authenticate).Patch("/{id}", patientController.UpdatePatient)
	router.With(mw.Authenticate).Delete("/{id}", patientController.DeletePatient)
	router.Post("/login", patientController.Login)
}
