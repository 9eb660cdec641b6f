package contracts

import (
	"context"

	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"
	"bookadoc-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorCentreUsecase interface {
	GetDoctorCentres(ctx context.Context) ([]responses.DoctorCentre, error)
	GetDoctorCentre(ctx context.Context, doctorCentreID string) (*responses.DoctorCentre, error)
	CreateDoctorCentre(ctx context.Context, request *requests.CreateDoctorCentre) (*models.DoctorCentre, error)
	UpdateDoctorCentre(ctx context.Context, doctorCentreID string, request *requests.UpdateDoctorCentre) (*models.DoctorCentre, error)
	DeleteDoctorCentre(ctx context.Context, doctorCentreID string) (*models.DoctorCentre, error)
}

type DoctorCentreRepository interface {
	FindAll(ctx context.Context) ([]models.DoctorCentre, error)
	FindByID(ctx context.Context, doctorCentreID primitive.ObjectID) (*models.DoctorCentre, error)
	Create(ctx context.Context, doctorCentre *models.DoctorCentre) (*models.DoctorCentre, error)
	Update(ctx context.Context, doctorCentre *models.DoctorCentre) error
	Delete(ctx context.Context, doctorCentreID primitive.ObjectID) error
}
