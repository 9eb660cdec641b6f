package bookings

import (
	"context"
	"testing"
	"time"

	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"
	"bookadoc-service/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var testCollector = metrics.NewCollector("bookadoc_booking_test")

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, bookingID primitive.ObjectID) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	args := m.Called(ctx, booking)
	if rf, ok := args.Get(0).(func(context.Context, *models.Booking) *models.Booking); ok {
		return rf(ctx, booking), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, bookingID primitive.ObjectID) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

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

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByID(ctx context.Context, doctorID primitive.ObjectID) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) FindByIDs(ctx context.Context, doctorIDs []primitive.ObjectID) ([]models.Doctor, error) {
	args := m.Called(ctx, doctorIDs)
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	args := m.Called(ctx, doctor)
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	args := m.Called(ctx, doctor)
	return args.Error(0)
}

func (m *MockDoctorRepository) Delete(ctx context.Context, doctorID primitive.ObjectID) error {
	args := m.Called(ctx, doctorID)
	return args.Error(0)
}

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

type MockAvailabilityRepository struct {
	mock.Mock
}

func (m *MockAvailabilityRepository) FindAll(ctx context.Context) ([]models.Availability, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Availability), args.Error(1)
}

func (m *MockAvailabilityRepository) FindByID(ctx context.Context, availabilityID primitive.ObjectID) (*models.Availability, error) {
	args := m.Called(ctx, availabilityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Availability), args.Error(1)
}

func (m *MockAvailabilityRepository) FindByIDs(ctx context.Context, availabilityIDs []primitive.ObjectID) ([]models.Availability, error) {
	args := m.Called(ctx, availabilityIDs)
	return args.Get(0).([]models.Availability), args.Error(1)
}

func (m *MockAvailabilityRepository) Create(ctx context.Context, availability *models.Availability) (*models.Availability, error) {
	args := m.Called(ctx, availability)
	return args.Get(0).(*models.Availability), args.Error(1)
}

func (m *MockAvailabilityRepository) Update(ctx context.Context, availability *models.Availability) error {
	args := m.Called(ctx, availability)
	return args.Error(0)
}

func (m *MockAvailabilityRepository) Delete(ctx context.Context, availabilityID primitive.ObjectID) error {
	args := m.Called(ctx, availabilityID)
	return args.Error(0)
}

type bookingMocks struct {
	booking       *MockBookingRepository
	patient       *MockPatientRepository
	doctor        *MockDoctorRepository
	medicalCentre *MockMedicalCentreRepository
	availability  *MockAvailabilityRepository
}

func newBookingUsecaseWithMocks() (*bookingMocks, *bookingUsecase) {
	mocks := &bookingMocks{
		booking:       new(MockBookingRepository),
		patient:       new(MockPatientRepository),
		doctor:        new(MockDoctorRepository),
		medicalCentre: new(MockMedicalCentreRepository),
		availability:  new(MockAvailabilityRepository),
	}
	uc := NewBookingUsecase(
		mocks.booking,
		mocks.patient,
		mocks.doctor,
		mocks.medicalCentre,
		mocks.availability,
		testCollector,
	).(*bookingUsecase)
	return mocks, uc
}

func TestCreateBooking(t *testing.T) {
	patientID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	medicalCentreID := primitive.NewObjectID()
	availabilityID := primitive.NewObjectID()

	request := &requests.CreateBooking{
		PatientID:       patientID.Hex(),
		DoctorID:        doctorID.Hex(),
		MedicalCentreID: medicalCentreID.Hex(),
		AvailabilityID:  availabilityID.Hex(),
	}

	t.Run("Defaults Status To Confirmed", func(t *testing.T) {
		mocks, uc := newBookingUsecaseWithMocks()
		mocks.patient.On("FindByID", mock.Anything, patientID).Return(&models.Patient{ID: patientID}, nil)
		mocks.doctor.On("FindByID", mock.Anything, doctorID).Return(&models.Doctor{ID: doctorID}, nil)
		mocks.booking.On("Create", mock.Anything, mock.AnythingOfType("*models.Booking")).
			Run(func(args mock.Arguments) {
				booking := args.Get(1).(*models.Booking)
				booking.ID = primitive.NewObjectID()
			}).
			Return(func(ctx context.Context, booking *models.Booking) *models.Booking { return booking }, nil)

		created, err := uc.CreateBooking(context.Background(), request)
		assert.NoError(t, err)
		assert.Equal(t, models.BookingStatusConfirmed, created.Status)
		assert.Equal(t, patientID, created.PatientID)
		assert.False(t, created.CreatedAt.IsZero())

		// Only patient and doctor references are verified.
		mocks.medicalCentre.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		mocks.availability.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Patient", func(t *testing.T) {
		mocks, uc := newBookingUsecaseWithMocks()
		mocks.patient.On("FindByID", mock.Anything, patientID).Return(nil, nil)

		created, err := uc.CreateBooking(context.Background(), request)
		assert.Nil(t, created)
		assert.ErrorContains(t, err, "Patient not found")
		mocks.booking.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Doctor", func(t *testing.T) {
		mocks, uc := newBookingUsecaseWithMocks()
		mocks.patient.On("FindByID", mock.Anything, patientID).Return(&models.Patient{ID: patientID}, nil)
		mocks.doctor.On("FindByID", mock.Anything, doctorID).Return(nil, nil)

		created, err := uc.CreateBooking(context.Background(), request)
		assert.Nil(t, created)
		assert.ErrorContains(t, err, "Doctor not found")
		mocks.booking.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetBookings(t *testing.T) {
	patientID := primitive.NewObjectID()
	doctorID := primitive.NewObjectID()
	medicalCentreID := primitive.NewObjectID()
	availabilityID := primitive.NewObjectID()

	stored := models.Booking{
		ID:              primitive.NewObjectID(),
		Status:          models.BookingStatusConfirmed,
		PatientID:       patientID,
		DoctorID:        doctorID,
		MedicalCentreID: medicalCentreID,
		AvailabilityID:  availabilityID,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	t.Run("Populates References", func(t *testing.T) {
		mocks, uc := newBookingUsecaseWithMocks()
		mocks.booking.On("FindAll", mock.Anything).Return([]models.Booking{stored}, nil)
		mocks.patient.On("FindByIDs", mock.Anything, []primitive.ObjectID{patientID}).
			Return([]models.Patient{{ID: patientID, FirstName: "Jane", LastName: "Doe"}}, nil)
		mocks.doctor.On("FindByIDs", mock.Anything, []primitive.ObjectID{doctorID}).
			Return([]models.Doctor{{ID: doctorID, DoctorName: "Dr Smith"}}, nil)
		mocks.medicalCentre.On("FindByIDs", mock.Anything, []primitive.ObjectID{medicalCentreID}).
			Return([]models.MedicalCentre{{ID: medicalCentreID, MedicalCentreName: "City Clinic"}}, nil)
		mocks.availability.On("FindByIDs", mock.Anything, []primitive.ObjectID{availabilityID}).
			Return([]models.Availability{{ID: availabilityID, StartTime: "09:00", EndTime: "09:30"}}, nil)

		result, err := uc.GetBookings(context.Background())
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "Jane", result[0].PatientID.FirstName)
		assert.Equal(t, "Dr Smith", result[0].DoctorID.DoctorName)
		assert.Equal(t, "City Clinic", result[0].MedicalCentreID.MedicalCentreName)
		assert.Equal(t, "09:00", result[0].AvailabilityID.StartTime)
	})

	t.Run("Dangling Reference Serializes As Null", func(t *testing.T) {
		mocks, uc := newBookingUsecaseWithMocks()
		mocks.booking.On("FindAll", mock.Anything).Return([]models.Booking{stored}, nil)
		mocks.patient.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.Patient{}, nil)
		mocks.doctor.On("FindByIDs", mock.Anything, mock.Anything).
			Return([]models.Doctor{{ID: doctorID, DoctorName: "Dr Smith"}}, nil)
		mocks.medicalCentre.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.MedicalCentre{}, nil)
		mocks.availability.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.Availability{}, nil)

		result, err := uc.GetBookings(context.Background())
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Nil(t, result[0].PatientID)
		assert.NotNil(t, result[0].DoctorID)
	})

	t.Run("Empty Collection Yields Empty List", func(t *testing.T) {
		mocks, uc := newBookingUsecaseWithMocks()
		mocks.booking.On("FindAll", mock.Anything).Return([]models.Booking{}, nil)
		mocks.patient.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.Patient{}, nil)
		mocks.doctor.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.Doctor{}, nil)
		mocks.medicalCentre.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.MedicalCentre{}, nil)
		mocks.availability.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.Availability{}, nil)

		result, err := uc.GetBookings(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Len(t, result, 0)
	})
}
