package contracts

import (
	"context"

	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AvailabilityUsecase interface {
	GetAvailabilities(ctx context.Context) ([]models.Availability, error)
	GetAvailability(ctx context.Context, availabilityID string) (*models.Availability, error)
	CreateAvailability(ctx context.Context, request *requests.CreateAvailability) (*models.Availability, error)
	UpdateAvailability(ctx context.Context, availabilityID string, request *requests.UpdateAvailability) (*models.Availability, error)
	DeleteAvailability(ctx context.Context, availabilityID string) (*models.Availability, error)
}

type AvailabilityRepository interface {
	FindAll(ctx context.Context) ([]models.Availability, error)
	FindByID(ctx context.Context, availabilityID primitive.ObjectID) (*models.Availability, error)
	FindByIDs(ctx context.Context, availabilityIDs []primitive.ObjectID) ([]models.Availability, error)
	Create(ctx context.Context, availability *models.Availability) (*models.Availability, error)
	Update(ctx context.Context, availability *models.Availability) error
	Delete(ctx context.Context, availabilityID primitive.ObjectID) error
}
