package contracts

import (
	"context"
	"time"

	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"
	"bookadoc-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorUsecase interface {
	GetDoctors(ctx context.Context) ([]responses.Doctor, error)
	GetDoctor(ctx context.Context, doctorID string) (*responses.Doctor, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error)
	DeleteDoctor(ctx context.Context, doctorID string) (*models.Doctor, error)
	// GetAvailableTimes lists the start times of the doctor's unbooked slots
	// on the given date. No slots means an empty list, not synthetic data.
	GetAvailableTimes(ctx context.Context, doctorID string, date time.Time) ([]string, error)
}

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID primitive.ObjectID) (*models.Doctor, error)
	FindByIDs(ctx context.Context, doctorIDs []primitive.ObjectID) ([]models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	Update(ctx context.Context, doctor *models.Doctor) error
	Delete(ctx context.Context, doctorID primitive.ObjectID) error
}
