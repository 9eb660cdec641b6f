package routers

import (
	"bookadoc-service/internal/app/delivery/http/middlewares"
	"bookadoc-service/internal/app/services/bookings"
	"bookadoc-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Bookings are the only resource with no public routes; even reads reveal
// who is seeing which doctor.
func attachBookingRoutes(router chi.Router, logger *zap.Logger, mw *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.MethodNotAllowed(methodNotAllowed(logger,
		constvars.MethodGet, constvars.MethodPost, constvars.MethodPatch, constvars.MethodDelete,
	))

	router.Use(mw.Authenticate)

	router.Get("/", bookingController.GetBookings)
	router.Get("/{id}", bookingController.GetBookingByID)
	router.Post("/", bookingController.CreateBooking)
	router.Patch("/{id}", bookingController.UpdateBooking)
	router.Delete("/{id}", bookingController.DeleteBooking)
}
