package routers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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
	"bookadoc-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"bookadoc-service/internal/pkg/metrics"
)

var testCollector = metrics.NewCollector("bookadoc_router_test")

func newTestRouter() *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Env:                        "test",
			AllowedOrigins:             []string{"*"},
			MaxRequests:                1000,
			RequestBodyLimitInMegabyte: 1,
		},
		JWT: config.JWT{
			Secret:        "test-secret",
			ExpTimeInHour: 1,
		},
	}
	mw := middlewares.NewMiddlewares(logger, internalConfig, testCollector)

	// Usecases stay nil. These tests only exercise routing, auth gating,
	// and the root handlers, none of which reach a usecase.
	controllers := &Controllers{
		Auth:               &auth.AuthController{Log: logger},
		Patient:            &patients.PatientController{Log: logger},
		Doctor:             &doctors.DoctorController{Log: logger},
		Specialty:          &specialties.SpecialtyController{Log: logger},
		MedicalCentre:      &medicalcentres.MedicalCentreController{Log: logger},
		Availability:       &availabilities.AvailabilityController{Log: logger},
		DoctorCentre:       &doctorcentres.DoctorCentreController{Log: logger},
		DoctorAvailability: &doctoravailabilities.DoctorAvailabilityController{Log: logger},
		Booking:            &bookings.BookingController{Log: logger},
	}

	router := chi.NewRouter()
	SetupRoutes(router, logger, internalConfig, mw, controllers)
	return router
}

func doRequest(t *testing.T, router *chi.Mux, method, target, token string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	request := httptest.NewRequest(method, target, nil)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	body := make(map[string]interface{})
	if recorder.Body.Len() > 0 && strings.Contains(recorder.Header().Get("Content-Type"), "application/json") {
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	}
	return recorder, body
}

func TestRootHandlers(t *testing.T) {
	router := newTestRouter()

	t.Run("Welcome", func(t *testing.T) {
		recorder, body := doRequest(t, router, http.MethodGet, "/", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Welcome to Book A Doc API!", body["message"])
		assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
		assert.Equal(t, "nosniff", recorder.Header().Get("X-Content-Type-Options"))
	})

	t.Run("Health", func(t *testing.T) {
		recorder, body := doRequest(t, router, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "healthy", body["status"])
		assert.NotEmpty(t, body["timestamp"])
	})

	t.Run("Unknown Path", func(t *testing.T) {
		recorder, body := doRequest(t, router, http.MethodGet, "/nope", "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "Page not found.", body["message"])
		assert.Equal(t, "/nope", body["path"])
	})

	t.Run("Metrics", func(t *testing.T) {
		recorder, _ := doRequest(t, router, http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestAuthGating(t *testing.T) {
	router := newTestRouter()

	protected := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/specialties"},
		{http.MethodPatch, "/specialties/abc"},
		{http.MethodDelete, "/doctors/abc"},
		{http.MethodPost, "/medicalCentres"},
		{http.MethodPost, "/availabilities"},
		{http.MethodPost, "/doctorCentres"},
		{http.MethodPost, "/doctorAvailabilities"},
		{http.MethodGet, "/bookings"},
		{http.MethodPost, "/bookings"},
		{http.MethodGet, "/patients/profile"},
	}
	for _, route := range protected {
		t.Run("Rejects "+route.method+" "+route.target, func(t *testing.T) {
			recorder, body := doRequest(t, router, route.method, route.target, "")
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, "Authentication failed. No token provided.", body["message"])
		})
	}

	t.Run("Rejects Expired Token", func(t *testing.T) {
		token, err := utils.GenerateAuthJWT("64f000000000000000000001", "expired@example.com", "test-secret", -1)
		assert.NoError(t, err)

		recorder, body := doRequest(t, router, http.MethodGet, "/bookings", token)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, "Token has expired. Please log in again.", body["message"])
	})
}

func TestMethodNotAllowed(t *testing.T) {
	router := newTestRouter()

	t.Run("Auth Allows Only Post", func(t *testing.T) {
		recorder, body := doRequest(t, router, http.MethodGet, "/auth/login", "")
		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, []interface{}{"POST"}, body["allowedMethods"])
	})

	t.Run("Specialties Reports Verb Union", func(t *testing.T) {
		recorder, body := doRequest(t, router, http.MethodPut, "/specialties", "")
		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
		assert.ElementsMatch(t, []interface{}{"GET", "POST", "PATCH", "DELETE"}, body["allowedMethods"])
	})
}
