package bookings

import (
	"context"
	"time"

	"bookadoc-service/internal/app/contracts"
	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"
	"bookadoc-service/internal/pkg/dto/responses"
	"bookadoc-service/internal/pkg/exceptions"
	"bookadoc-service/internal/pkg/metrics"
	"bookadoc-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type bookingUsecase struct {
	BookingRepository       contracts.BookingRepository
	PatientRepository       contracts.PatientRepository
	DoctorRepository        contracts.DoctorRepository
	MedicalCentreRepository contracts.MedicalCentreRepository
	AvailabilityRepository  contracts.AvailabilityRepository
	Metrics                 *metrics.Collector
}

func NewBookingUsecase(
	bookingMongoRepository contracts.BookingRepository,
	patientMongoRepository contracts.PatientRepository,
	doctorMongoRepository contracts.DoctorRepository,
	medicalCentreMongoRepository contracts.MedicalCentreRepository,
	availabilityMongoRepository contracts.AvailabilityRepository,
	collector *metrics.Collector,
) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingRepository:       bookingMongoRepository,
		PatientRepository:       patientMongoRepository,
		DoctorRepository:        doctorMongoRepository,
		MedicalCentreRepository: medicalCentreMongoRepository,
		AvailabilityRepository:  availabilityMongoRepository,
		Metrics:                 collector,
	}
}

func (uc *bookingUsecase) GetBookings(ctx context.Context) ([]responses.Booking, error) {
	bookings, err := uc.BookingRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	refs, err := uc.loadRefs(ctx, bookings)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Booking, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, buildBookingResponse(&booking, refs))
	}
	return result, nil
}

func (uc *bookingUsecase) GetBooking(ctx context.Context, bookingID string) (*responses.Booking, error) {
	objectID, err := utils.ParseObjectID(bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := uc.BookingRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrNotFound("Booking", bookingID)
	}

	refs, err := uc.loadRefs(ctx, []models.Booking{*booking})
	if err != nil {
		return nil, err
	}

	response := buildBookingResponse(booking, refs)
	return &response, nil
}

// CreateBooking verifies the patient and doctor references resolve before
// writing. The centre and availability references are stored as given; only
// their shape is checked.
func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*models.Booking, error) {
	patientID, err := utils.ParseObjectID(request.PatientID)
	if err != nil {
		return nil, err
	}
	doctorID, err := utils.ParseObjectID(request.DoctorID)
	if err != nil {
		return nil, err
	}
	medicalCentreID, err := utils.ParseObjectID(request.MedicalCentreID)
	if err != nil {
		return nil, err
	}
	availabilityID, err := utils.ParseObjectID(request.AvailabilityID)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrBadRequest("Patient not found")
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrBadRequest("Doctor not found")
	}

	status := request.Status
	if status == "" {
		status = models.BookingStatusConfirmed
	}

	now := time.Now()
	booking := &models.Booking{
		Status:          status,
		PatientID:       patientID,
		DoctorID:        doctorID,
		MedicalCentreID: medicalCentreID,
		AvailabilityID:  availabilityID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := uc.BookingRepository.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	uc.Metrics.BookingsTotal.WithLabelValues(created.Status).Inc()
	return created, nil
}

func (uc *bookingUsecase) UpdateBooking(ctx context.Context, bookingID string, request *requests.UpdateBooking) (*models.Booking, error) {
	objectID, err := utils.ParseObjectID(bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := uc.BookingRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrNotFound("Booking", bookingID)
	}

	if request.Status != nil {
		booking.Status = *request.Status
	}
	if request.PatientID != nil {
		patientID, err := utils.ParseObjectID(*request.PatientID)
		if err != nil {
			return nil, err
		}
		booking.PatientID = patientID
	}
	if request.DoctorID != nil {
		doctorID, err := utils.ParseObjectID(*request.DoctorID)
		if err != nil {
			return nil, err
		}
		booking.DoctorID = doctorID
	}
	if request.MedicalCentreID != nil {
		medicalCentreID, err := utils.ParseObjectID(*request.MedicalCentreID)
		if err != nil {
			return nil, err
		}
		booking.MedicalCentreID = medicalCentreID
	}
	if request.AvailabilityID != nil {
		availabilityID, err := utils.ParseObjectID(*request.AvailabilityID)
		if err != nil {
			return nil, err
		}
		booking.AvailabilityID = availabilityID
	}
	booking.UpdatedAt = time.Now()

	if messages := utils.ValidateStruct(booking); messages != nil {
		return nil, exceptions.ErrValidation(messages)
	}

	if err := uc.BookingRepository.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (uc *bookingUsecase) DeleteBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	objectID, err := utils.ParseObjectID(bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := uc.BookingRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrNotFound("Booking", bookingID)
	}

	if err := uc.BookingRepository.Delete(ctx, objectID); err != nil {
		return nil, err
	}
	return booking, nil
}

// bookingRefs batches the four referenced collections for response building.
type bookingRefs struct {
	patientByID       map[primitive.ObjectID]models.Patient
	doctorByID        map[primitive.ObjectID]models.Doctor
	medicalCentreByID map[primitive.ObjectID]models.MedicalCentre
	availabilityByID  map[primitive.ObjectID]models.Availability
}

func (uc *bookingUsecase) loadRefs(ctx context.Context, bookings []models.Booking) (*bookingRefs, error) {
	patientIDs := make([]primitive.ObjectID, 0, len(bookings))
	doctorIDs := make([]primitive.ObjectID, 0, len(bookings))
	medicalCentreIDs := make([]primitive.ObjectID, 0, len(bookings))
	availabilityIDs := make([]primitive.ObjectID, 0, len(bookings))
	for _, booking := range bookings {
		patientIDs = append(patientIDs, booking.PatientID)
		doctorIDs = append(doctorIDs, booking.DoctorID)
		medicalCentreIDs = append(medicalCentreIDs, booking.MedicalCentreID)
		availabilityIDs = append(availabilityIDs, booking.AvailabilityID)
	}

	patients, err := uc.PatientRepository.FindByIDs(ctx, patientIDs)
	if err != nil {
		return nil, err
	}
	doctors, err := uc.DoctorRepository.FindByIDs(ctx, doctorIDs)
	if err != nil {
		return nil, err
	}
	medicalCentres, err := uc.MedicalCentreRepository.FindByIDs(ctx, medicalCentreIDs)
	if err != nil {
		return nil, err
	}
	availabilities, err := uc.AvailabilityRepository.FindByIDs(ctx, availabilityIDs)
	if err != nil {
		return nil, err
	}

	refs := &bookingRefs{
		patientByID:       make(map[primitive.ObjectID]models.Patient, len(patients)),
		doctorByID:        make(map[primitive.ObjectID]models.Doctor, len(doctors)),
		medicalCentreByID: make(map[primitive.ObjectID]models.MedicalCentre, len(medicalCentres)),
		availabilityByID:  make(map[primitive.ObjectID]models.Availability, len(availabilities)),
	}
	for _, patient := range patients {
		refs.patientByID[patient.ID] = patient
	}
	for _, doctor := range doctors {
		refs.doctorByID[doctor.ID] = doctor
	}
	for _, medicalCentre := range medicalCentres {
		refs.medicalCentreByID[medicalCentre.ID] = medicalCentre
	}
	for _, availability := range availabilities {
		refs.availabilityByID[availability.ID] = availability
	}
	return refs, nil
}

func buildBookingResponse(booking *models.Booking, refs *bookingRefs) responses.Booking {
	response := responses.Booking{
		ID:        booking.ID.Hex(),
		Status:    booking.Status,
		CreatedAt: booking.CreatedAt,
		UpdatedAt: booking.UpdatedAt,
	}
	if patient, ok := refs.patientByID[booking.PatientID]; ok {
		response.PatientID = &responses.PatientRef{
			ID:        patient.ID.Hex(),
			FirstName: patient.FirstName,
			LastName:  patient.LastName,
		}
	}
	if doctor, ok := refs.doctorByID[booking.DoctorID]; ok {
		response.DoctorID = &responses.DoctorRef{
			ID:         doctor.ID.Hex(),
			DoctorName: doctor.DoctorName,
		}
	}
	if medicalCentre, ok := refs.medicalCentreByID[booking.MedicalCentreID]; ok {
		response.MedicalCentreID = &responses.MedicalCentreRef{
			ID:                medicalCentre.ID.Hex(),
			MedicalCentreName: medicalCentre.MedicalCentreName,
		}
	}
	if availability, ok := refs.availabilityByID[booking.AvailabilityID]; ok {
		response.AvailabilityID = &responses.AvailabilityRef{
			ID:        availability.ID.Hex(),
			Date:      availability.Date,
			StartTime: availability.StartTime,
			EndTime:   availability.EndTime,
		}
	}
	return response
}
