package contracts

import (
	"context"

	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"
	"bookadoc-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingUsecase interface {
	GetBookings(ctx context.Context) ([]responses.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*responses.Booking, error)
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*models.Booking, error)
	UpdateBooking(ctx context.Context, bookingID string, request *requests.UpdateBooking) (*models.Booking, error)
	DeleteBooking(ctx context.Context, bookingID string) (*models.Booking, error)
}

type BookingRepository interface {
	FindAll(ctx context.Context) ([]models.Booking, error)
	FindByID(ctx context.Context, bookingID primitive.ObjectID) (*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	Delete(ctx context.Context, bookingID primitive.ObjectID) error
}
