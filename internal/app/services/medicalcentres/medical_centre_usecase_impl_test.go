package medicalcentres

import (
	"context"
	"testing"

	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockMedicalCentreRepository struct {
	mock.Mock
}

func (m *MockMedicalCentreRepository) FindAll(ctx context.Context) ([]models.MedicalCentre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.MedicalCentre), args.Error(1)
}

func (m *MockMedicalCentreRepository) FindByID(ctx context.Context, medicalCentreID primitive.ObjectID) (*models.MedicalCentre, error) {
	args := m.Called(ctx, medicalCentreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MedicalCentre), args.Error(1)
}

func (m *MockMedicalCentreRepository) FindByIDs(ctx context.Context, medicalCentreIDs []primitive.ObjectID) ([]models.MedicalCentre, error) {
	args := m.Called(ctx, medicalCentreIDs)
	return args.Get(0).([]models.MedicalCentre), args.Error(1)
}

func (m *MockMedicalCentreRepository) FindByContactEmail(ctx context.Context, email string) (*models.MedicalCentre, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MedicalCentre), args.Error(1)
}

func (m *MockMedicalCentreRepository) Create(ctx context.Context, medicalCentre *models.MedicalCentre) (*models.MedicalCentre, error) {
	args := m.Called(ctx, medicalCentre)
	if rf, ok := args.Get(0).(func(context.Context, *models.MedicalCentre) *models.MedicalCentre); ok {
		return rf(ctx, medicalCentre), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MedicalCentre), args.Error(1)
}

func (m *MockMedicalCentreRepository) Update(ctx context.Context, medicalCentre *models.MedicalCentre) error {
	args := m.Called(ctx, medicalCentre)
	return args.Error(0)
}

func (m *MockMedicalCentreRepository) Delete(ctx context.Context, medicalCentreID primitive.ObjectID) error {
	args := m.Called(ctx, medicalCentreID)
	return args.Error(0)
}

func TestCreateMedicalCentre(t *testing.T) {
	request := &requests.CreateMedicalCentre{
		MedicalCentreName: "City Clinic",
		OperatingHours:    "8am - 6pm",
		Address:           requests.AddressPayload{Street: "1 Main St", City: "Sydney"},
		Contacts:          requests.ContactsPayload{Email: "Reception@CityClinic.COM", Phone: "0290000000"},
	}

	t.Run("Lowercases Contact Email", func(t *testing.T) {
		repo := new(MockMedicalCentreRepository)
		repo.On("FindByContactEmail", mock.Anything, "reception@cityclinic.com").Return(nil, nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.MedicalCentre")).
			Run(func(args mock.Arguments) {
				medicalCentre := args.Get(1).(*models.MedicalCentre)
				medicalCentre.ID = primitive.NewObjectID()
			}).
			Return(func(ctx context.Context, medicalCentre *models.MedicalCentre) *models.MedicalCentre { return medicalCentre }, nil)

		uc := NewMedicalCentreUsecase(repo)

		created, err := uc.CreateMedicalCentre(context.Background(), request)
		assert.NoError(t, err)
		assert.Equal(t, "reception@cityclinic.com", created.Contacts.Email)
		repo.AssertExpectations(t)
	})

	t.Run("Duplicate Check Is Case-Insensitive", func(t *testing.T) {
		repo := new(MockMedicalCentreRepository)
		repo.On("FindByContactEmail", mock.Anything, "reception@cityclinic.com").
			Return(&models.MedicalCentre{ID: primitive.NewObjectID()}, nil)

		uc := NewMedicalCentreUsecase(repo)

		created, err := uc.CreateMedicalCentre(context.Background(), request)
		assert.Nil(t, created)
		assert.ErrorContains(t, err, "Duplicate value error")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
