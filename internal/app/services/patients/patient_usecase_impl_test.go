package patients

import (
	"context"
	"testing"
	"time"

	"bookadoc-service/internal/app/config"
	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"
	"bookadoc-service/internal/pkg/metrics"
	"bookadoc-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testCollector = metrics.NewCollector("bookadoc_patient_test")

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID primitive.ObjectID) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByIDs(ctx context.Context, patientIDs []primitive.ObjectID) ([]models.Patient, error) {
	args := m.Called(ctx, patientIDs)
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	args := m.Called(ctx, patient)
	if rf, ok := args.Get(0).(func(context.Context, *models.Patient) *models.Patient); ok {
		return rf(ctx, patient), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) Delete(ctx context.Context, patientID primitive.ObjectID) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{BcryptCost: 4},
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
}

func TestCreatePatient(t *testing.T) {
	request := &requests.CreatePatient{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane.doe@example.com",
		DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		Address:     requests.AddressPayload{Street: "1 Main St", City: "Sydney"},
		PhoneNumber: "0400000000",
		Password:    "longenoughpassword",
	}

	t.Run("Signs Up And Issues Token", func(t *testing.T) {
		repo := new(MockPatientRepository)
		repo.On("FindByEmail", mock.Anything, "jane.doe@example.com").Return(nil, nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Patient")).
			Run(func(args mock.Arguments) {
				patient := args.Get(1).(*models.Patient)
				patient.ID = primitive.NewObjectID()
			}).
			Return(func(ctx context.Context, patient *models.Patient) *models.Patient { return patient }, nil)

		uc := NewPatientUsecase(repo, testCollector, testInternalConfig())

		result, err := uc.CreatePatient(context.Background(), request)
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.False(t, result.NewPatient.ID.IsZero())
		assert.NotEqual(t, "longenoughpassword", result.NewPatient.Password, "password must be stored hashed")
		assert.True(t, utils.CheckPasswordHash("longenoughpassword", result.NewPatient.Password))

		claims, err := utils.ParseAuthJWT(result.Token, "test-secret")
		assert.NoError(t, err)
		assert.Equal(t, result.NewPatient.ID.Hex(), claims.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		repo := new(MockPatientRepository)
		repo.On("FindByEmail", mock.Anything, "jane.doe@example.com").
			Return(&models.Patient{ID: primitive.NewObjectID(), Email: "jane.doe@example.com"}, nil)

		uc := NewPatientUsecase(repo, testCollector, testInternalConfig())

		result, err := uc.CreatePatient(context.Background(), request)
		assert.Nil(t, result)
		assert.ErrorContains(t, err, "Duplicate value error")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Lowercases Email", func(t *testing.T) {
		mixedCase := *request
		mixedCase.Email = "Jane.Doe@Example.COM"

		repo := new(MockPatientRepository)
		repo.On("FindByEmail", mock.Anything, "jane.doe@example.com").Return(nil, nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Patient")).
			Run(func(args mock.Arguments) {
				patient := args.Get(1).(*models.Patient)
				patient.ID = primitive.NewObjectID()
			}).
			Return(func(ctx context.Context, patient *models.Patient) *models.Patient { return patient }, nil)

		uc := NewPatientUsecase(repo, testCollector, testInternalConfig())

		result, err := uc.CreatePatient(context.Background(), &mixedCase)
		assert.NoError(t, err)
		assert.Equal(t, "jane.doe@example.com", result.NewPatient.Email)
		repo.AssertExpectations(t)
	})

	t.Run("Duplicate Check Is Case-Insensitive", func(t *testing.T) {
		mixedCase := *request
		mixedCase.Email = "JANE.DOE@EXAMPLE.COM"

		repo := new(MockPatientRepository)
		repo.On("FindByEmail", mock.Anything, "jane.doe@example.com").
			Return(&models.Patient{ID: primitive.NewObjectID(), Email: "jane.doe@example.com"}, nil)

		uc := NewPatientUsecase(repo, testCollector, testInternalConfig())

		result, err := uc.CreatePatient(context.Background(), &mixedCase)
		assert.Nil(t, result)
		assert.ErrorContains(t, err, "Duplicate value error")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	hash, _ := utils.HashPassword("longenoughpassword", 4)
	stored := &models.Patient{
		ID:       primitive.NewObjectID(),
		Email:    "jane.doe@example.com",
		Password: hash,
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockPatientRepository)
		repo.On("FindByEmail", mock.Anything, "jane.doe@example.com").Return(stored, nil)

		uc := NewPatientUsecase(repo, testCollector, testInternalConfig())

		patient, token, err := uc.Login(context.Background(), &requests.LoginPatient{
			Email:    "jane.doe@example.com",
			Password: "longenoughpassword",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, stored.ID, patient.ID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		repo := new(MockPatientRepository)
		repo.On("FindByEmail", mock.Anything, "jane.doe@example.com").Return(stored, nil)

		uc := NewPatientUsecase(repo, testCollector, testInternalConfig())

		patient, token, err := uc.Login(context.Background(), &requests.LoginPatient{
			Email:    "jane.doe@example.com",
			Password: "wrong password",
		})
		assert.Nil(t, patient)
		assert.Empty(t, token)
		assert.ErrorContains(t, err, "Invalid email or password")
	})

	t.Run("Matches Email Case-Insensitively", func(t *testing.T) {
		repo := new(MockPatientRepository)
		repo.On("FindByEmail", mock.Anything, "jane.doe@example.com").Return(stored, nil)

		uc := NewPatientUsecase(repo, testCollector, testInternalConfig())

		patient, token, err := uc.Login(context.Background(), &requests.LoginPatient{
			Email:    "Jane.Doe@Example.COM",
			Password: "longenoughpassword",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, stored.ID, patient.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		repo := new(MockPatientRepository)
		repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

		uc := NewPatientUsecase(repo, testCollector, testInternalConfig())

		patient, token, err := uc.Login(context.Background(), &requests.LoginPatient{
			Email:    "nobody@example.com",
			Password: "longenoughpassword",
		})
		assert.Nil(t, patient)
		assert.Empty(t, token)
		assert.ErrorContains(t, err, "Invalid email or password")
	})
}

func TestGetPatient(t *testing.T) {
	t.Run("Malformed ID", func(t *testing.T) {
		uc := NewPatientUsecase(new(MockPatientRepository), testCollector, testInternalConfig())

		patient, err := uc.GetPatient(context.Background(), "nonsense")
		assert.Nil(t, patient)
		assert.ErrorContains(t, err, "Invalid ID format")
	})

	t.Run("Unknown ID", func(t *testing.T) {
		id := primitive.NewObjectID()
		repo := new(MockPatientRepository)
		repo.On("FindByID", mock.Anything, id).Return(nil, nil)

		uc := NewPatientUsecase(repo, testCollector, testInternalConfig())

		patient, err := uc.GetPatient(context.Background(), id.Hex())
		assert.Nil(t, patient)
		assert.ErrorContains(t, err, "Patient with id "+id.Hex()+" not found")
	})
}

func TestUpdatePatient(t *testing.T) {
	t.Run("Merged Record Is Revalidated", func(t *testing.T) {
		id := primitive.NewObjectID()
		stored := &models.Patient{
			ID:          id,
			FirstName:   "Jane",
			LastName:    "Doe",
			Email:       "jane.doe@example.com",
			DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
			Address:     models.Address{Street: "1 Main St", City: "Sydney"},
			PhoneNumber: "0400000000",
			Password:    "hashed",
		}
		repo := new(MockPatientRepository)
		repo.On("FindByID", mock.Anything, id).Return(stored, nil)

		uc := NewPatientUsecase(repo, testCollector, testInternalConfig())

		blank := "   "
		patient, err := uc.UpdatePatient(context.Background(), id.Hex(), &requests.UpdatePatient{
			FirstName: &blank,
		})
		assert.Nil(t, patient)
		assert.ErrorContains(t, err, "Validation failed")
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Partial Patch Keeps Other Fields", func(t *testing.T) {
		id := primitive.NewObjectID()
		stored := &models.Patient{
			ID:          id,
			FirstName:   "Jane",
			LastName:    "Doe",
			Email:       "jane.doe@example.com",
			DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
			Address:     models.Address{Street: "1 Main St", City: "Sydney"},
			PhoneNumber: "0400000000",
			Password:    "hashed",
		}
		repo := new(MockPatientRepository)
		repo.On("FindByID", mock.Anything, id).Return(stored, nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Patient")).Return(nil)

		uc := NewPatientUsecase(repo, testCollector, testInternalConfig())

		newPhone := "0411111111"
		patient, err := uc.UpdatePatient(context.Background(), id.Hex(), &requests.UpdatePatient{
			PhoneNumber: &newPhone,
		})
		assert.NoError(t, err)
		assert.Equal(t, "0411111111", patient.PhoneNumber)
		assert.Equal(t, "Jane", patient.FirstName)
		repo.AssertExpectations(t)
	})

	t.Run("Email Patch Is Lowercased", func(t *testing.T) {
		id := primitive.NewObjectID()
		stored := &models.Patient{
			ID:          id,
			FirstName:   "Jane",
			LastName:    "Doe",
			Email:       "jane.doe@example.com",
			DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
			Address:     models.Address{Street: "1 Main St", City: "Sydney"},
			PhoneNumber: "0400000000",
			Password:    "hashed",
		}
		repo := new(MockPatientRepository)
		repo.On("FindByID", mock.Anything, id).Return(stored, nil)
		repo.On("FindByEmail", mock.Anything, "jane.new@example.com").Return(nil, nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Patient")).Return(nil)

		uc := NewPatientUsecase(repo, testCollector, testInternalConfig())

		newEmail := "Jane.New@Example.COM"
		patient, err := uc.UpdatePatient(context.Background(), id.Hex(), &requests.UpdatePatient{
			Email: &newEmail,
		})
		assert.NoError(t, err)
		assert.Equal(t, "jane.new@example.com", patient.Email)
		repo.AssertExpectations(t)
	})
}

func TestDeletePatient(t *testing.T) {
	t.Run("Returns Prior Record", func(t *testing.T) {
		id := primitive.NewObjectID()
		stored := &models.Patient{
			ID:        id,
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane.doe@example.com",
		}
		repo := new(MockPatientRepository)
		repo.On("FindByID", mock.Anything, id).Return(stored, nil)
		repo.On("Delete", mock.Anything, id).Return(nil)

		uc := NewPatientUsecase(repo, testCollector, testInternalConfig())

		patient, err := uc.DeletePatient(context.Background(), id.Hex())
		assert.NoError(t, err)
		assert.Equal(t, "Jane", patient.FirstName)
		assert.Equal(t, id, patient.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Unknown ID", func(t *testing.T) {
		id := primitive.NewObjectID()
		repo := new(MockPatientRepository)
		repo.On("FindByID", mock.Anything, id).Return(nil, nil)

		uc := NewPatientUsecase(repo, testCollector, testInternalConfig())

		patient, err := uc.DeletePatient(context.Background(), id.Hex())
		assert.Nil(t, patient)
		assert.ErrorContains(t, err, "Patient with id "+id.Hex()+" not found")
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
