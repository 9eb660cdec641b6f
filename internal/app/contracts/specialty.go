package contracts

import (
	"context"

	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SpecialtyUsecase interface {
	GetSpecialties(ctx context.Context) ([]models.Specialty, error)
	GetSpecialty(ctx context.Context, specialtyID string) (*models.Specialty, error)
	CreateSpecialty(ctx context.Context, request *requests.CreateSpecialty) (*models.Specialty, error)
	UpdateSpecialty(ctx context.Context, specialtyID string, request *requests.UpdateSpecialty) (*models.Specialty, error)
	DeleteSpecialty(ctx context.Context, specialtyID string) (*models.Specialty, error)
}

type SpecialtyRepository interface {
	FindAll(ctx context.Context) ([]models.Specialty, error)
	FindByID(ctx context.Context, specialtyID primitive.ObjectID) (*models.Specialty, error)
	FindByIDs(ctx context.Context, specialtyIDs []primitive.ObjectID) ([]models.Specialty, error)
	FindByName(ctx context.Context, specialtyName string) (*models.Specialty, error)
	Create(ctx context.Context, specialty *models.Specialty) (*models.Specialty, error)
	Update(ctx context.Context, specialty *models.Specialty) error
	Delete(ctx context.Context, specialtyID primitive.ObjectID) error
}
