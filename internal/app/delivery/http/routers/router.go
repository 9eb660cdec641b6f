package routers

import (
	"net/http"
	"time"

	"bookadoc-service/internal/app/config"
	"bookadoc-service/internal/app/delivery/http/middlewares"
	"bookadoc-service/internal/app/services/auth"
	"bookadoc-service/internal/app/services/availabilities"
	"bookadoc-service/internal/app/services/bookings"
	"bookadoc-service/internal/app/services/doctoravailabilities"
	"bookadoc-service/internal/app/services/doctorcentres"
	"bookadoc-service/internal/app/services/doctors"
	"bookadoc-service/internal/app/services/medicalcentres"
	"bookadoc-service/internal/app/services/patients"
	"bookadoc-service/internal/app/services/specialties"
	"bookadoc-service/internal/pkg/constvars"
	"bookadoc-service/internal/pkg/dto/responses"
	"bookadoc-service/internal/pkg/exceptions"
	"bookadoc-service/internal/pkg/metrics"
	"bookadoc-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

type Controllers struct {
	Auth               *auth.AuthController
	Patient            *patients.PatientController
	Doctor             *doctors.DoctorController
	Specialty          *specialties.SpecialtyController
	MedicalCentre      *medicalcentres.MedicalCentreController
	Availability       *availabilities.AvailabilityController
	DoctorCentre       *doctorcentres.DoctorCentreController
	DoctorAvailability *doctoravailabilities.DoctorAvailabilityController
	Booking            *bookings.BookingController
}

func SetupRoutes(
	router *chi.Mux,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	controllers *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(mw.RequestID)
	router.Use(mw.SecurityHeaders)
	router.Use(mw.RequestBodyLimit)
	router.Use(mw.Recoverer)
	router.Use(mw.Observe)
	router.Use(mw.Logging)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(logger, w, exceptions.ErrPageNotFound(r.URL.Path))
	})

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Welcome{
			Message: "Welcome to Book A Doc API!",
		})
	})

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Health{
			Status:    "healthy",
			Timestamp: time.Now(),
		})
	})

	router.Handle("/metrics", metrics.MetricsHandler())

	router.Route("/auth", func(r chi.Router) {
		attachAuthRoutes(r, logger, controllers.Auth)
	})
	router.Route("/patients", func(r chi.Router) {
		attachPatientRoutes(r, logger, mw, controllers.Patient)
	})
	router.Route("/doctors", func(r chi.Router) {
		attachDoctorRoutes(r, logger, mw, controllers.Doctor)
	})
	router.Route("/specialties", func(r chi.Router) {
		attachSpecialtyRoutes(r, logger, mw, controllers.Specialty)
	})
	router.Route("/medicalCentres", func(r chi.Router) {
		attachMedicalCentreRoutes(r, logger, mw, controllers.MedicalCentre)
	})
	router.Route("/availabilities", func(r chi.Router) {
		attachAvailabilityRoutes(r, logger, mw, controllers.Availability)
	})
	router.Route("/doctorCentres", func(r chi.Router) {
		attachDoctorCentreRoutes(r, logger, mw, controllers.DoctorCentre)
	})
	router.Route("/doctorAvailabilities", func(r chi.Router) {
		attachDoctorAvailabilityRoutes(r, logger, mw, controllers.DoctorAvailability)
	})
	router.Route("/bookings", func(r chi.Router) {
		attachBookingRoutes(r, logger, mw, controllers.Booking)
	})
}

// methodNotAllowed reports the verbs the resource actually serves.
func methodNotAllowed(logger *zap.Logger, allowedMethods ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.BuildErrorResponse(logger, w, exceptions.ErrMethodNotAllowed(allowedMethods))
	}
}
