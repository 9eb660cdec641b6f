package contracts

import (
	"context"

	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"
	"bookadoc-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorAvailabilityUsecase interface {
	GetDoctorAvailabilities(ctx context.Context) ([]responses.DoctorAvailability, error)
	GetDoctorAvailability(ctx context.Context, doctorAvailabilityID string) (*responses.DoctorAvailability, error)
	CreateDoctorAvailability(ctx context.Context, request *requests.CreateDoctorAvailability) (*models.DoctorAvailability, error)
	UpdateDoctorAvailability(ctx context.Context, doctorAvailabilityID string, request *requests.UpdateDoctorAvailability) (*models.DoctorAvailability, error)
	DeleteDoctorAvailability(ctx context.Context, doctorAvailabilityID string) (*models.DoctorAvailability, error)
}

type DoctorAvailabilityRepository interface {
	FindAll(ctx context.Context) ([]models.DoctorAvailability, error)
	FindByID(ctx context.Context, doctorAvailabilityID primitive.ObjectID) (*models.DoctorAvailability, error)
	FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.DoctorAvailability, error)
	Create(ctx context.Context, doctorAvailability *models.DoctorAvailability) (*models.DoctorAvailability, error)
	Update(ctx context.Context, doctorAvailability *models.DoctorAvailability) error
	Delete(ctx context.Context, doctorAvailabilityID primitive.ObjectID) error
}
