package contracts

import (
	"context"

	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MedicalCentreUsecase interface {
	GetMedicalCentres(ctx context.Context) ([]models.MedicalCentre, error)
	GetMedicalCentre(ctx context.Context, medicalCentreID string) (*models.MedicalCentre, error)
	CreateMedicalCentre(ctx context.Context, request *requests.CreateMedicalCentre) (*models.MedicalCentre, error)
	UpdateMedicalCentre(ctx context.Context, medicalCentreID string, request *requests.UpdateMedicalCentre) (*models.MedicalCentre, error)
	DeleteMedicalCentre(ctx context.Context, medicalCentreID string) (*models.MedicalCentre, error)
}

type MedicalCentreRepository interface {
	FindAll(ctx context.Context) ([]models.MedicalCentre, error)
	FindByID(ctx context.Context, medicalCentreID primitive.ObjectID) (*models.MedicalCentre, error)
	FindByIDs(ctx context.Context, medicalCentreIDs []primitive.ObjectID) ([]models.MedicalCentre, error)
	FindByContactEmail(ctx context.Context, email string) (*models.MedicalCentre, error)
	Create(ctx context.Context, medicalCentre *models.MedicalCentre) (*models.MedicalCentre, error)
	Update(ctx context.Context, medicalCentre *models.MedicalCentre) error
	Delete(ctx context.Context, medicalCentreID primitive.ObjectID) error
}
