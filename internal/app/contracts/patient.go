package contracts

import (
	"context"

	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"
	"bookadoc-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PatientUsecase interface {
	GetPatients(ctx context.Context) ([]models.Patient, error)
	GetPatient(ctx context.Context, patientID string) (*models.Patient, error)
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.PatientCreated, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
	DeletePatient(ctx context.Context, patientID string) (*models.Patient, error)
	Login(ctx context.Context, request *requests.LoginPatient) (*models.Patient, string, error)
}

type PatientRepository interface {
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID primitive.ObjectID) (*models.Patient, error)
	FindByIDs(ctx context.Context, patientIDs []primitive.ObjectID) ([]models.Patient, error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	Create(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, patientID primitive.ObjectID) error
}
