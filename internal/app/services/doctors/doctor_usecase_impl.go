package doctors

import (
	"context"
	"time"

	"bookadoc-service/internal/app/contracts"
	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"
	"bookadoc-service/internal/pkg/dto/responses"
	"bookadoc-service/internal/pkg/exceptions"
	"bookadoc-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type doctorUsecase struct {
	DoctorRepository             contracts.DoctorRepository
	SpecialtyRepository          contracts.SpecialtyRepository
	DoctorAvailabilityRepository contracts.DoctorAvailabilityRepository
	AvailabilityRepository       contracts.AvailabilityRepository
}

func NewDoctorUsecase(
	doctorMongoRepository contracts.DoctorRepository,
	specialtyMongoRepository contracts.SpecialtyRepository,
	doctorAvailabilityMongoRepository contracts.DoctorAvailabilityRepository,
	availabilityMongoRepository contracts.AvailabilityRepository,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository:             doctorMongoRepository,
		SpecialtyRepository:          specialtyMongoRepository,
		DoctorAvailabilityRepository: doctorAvailabilityMongoRepository,
		AvailabilityRepository:       availabilityMongoRepository,
	}
}

func (uc *doctorUsecase) GetDoctors(ctx context.Context) ([]responses.Doctor, error) {
	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	specialtyIDs := make([]primitive.ObjectID, 0, len(doctors))
	for _, doctor := range doctors {
		if doctor.SpecialtyID != nil {
			specialtyIDs = append(specialtyIDs, *doctor.SpecialtyID)
		}
	}

	specialties, err := uc.SpecialtyRepository.FindByIDs(ctx, specialtyIDs)
	if err != nil {
		return nil, err
	}
	specialtyByID := make(map[primitive.ObjectID]models.Specialty, len(specialties))
	for _, specialty := range specialties {
		specialtyByID[specialty.ID] = specialty
	}

	result := make([]responses.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		result = append(result, buildDoctorResponse(&doctor, specialtyByID))
	}
	return result, nil
}

func (uc *doctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	objectID, err := utils.ParseObjectID(doctorID)
	if err != nil {
		return nil, err
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrNotFound("Doctor", doctorID)
	}

	specialtyByID := make(map[primitive.ObjectID]models.Specialty)
	if doctor.SpecialtyID != nil {
		specialty, err := uc.SpecialtyRepository.FindByID(ctx, *doctor.SpecialtyID)
		if err != nil {
			return nil, err
		}
		if specialty != nil {
			specialtyByID[specialty.ID] = *specialty
		}
	}

	response := buildDoctorResponse(doctor, specialtyByID)
	return &response, nil
}

// GetAvailableTimes collects the doctor's linked slots, keeps the unbooked
// ones falling on the requested day, and returns their start times. A doctor
// with no linked slots yields an empty list.
func (uc *doctorUsecase) GetAvailableTimes(ctx context.Context, doctorID string, date time.Time) ([]string, error) {
	objectID, err := utils.ParseObjectID(doctorID)
	if err != nil {
		return nil, err
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrNotFound("Doctor", doctorID)
	}

	links, err := uc.DoctorAvailabilityRepository.FindByDoctorID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	availabilityIDs := make([]primitive.ObjectID, 0, len(links))
	for _, link := range links {
		availabilityIDs = append(availabilityIDs, link.AvailabilityID)
	}

	availabilities, err := uc.AvailabilityRepository.FindByIDs(ctx, availabilityIDs)
	if err != nil {
		return nil, err
	}

	times := make([]string, 0, len(availabilities))
	for _, availability := range availabilities {
		if availability.IsBooked {
			continue
		}
		if sameDay(availability.Date, date) {
			times = append(times, availability.StartTime)
		}
	}
	return times, nil
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error) {
	specialtyID, err := utils.ParseObjectID(request.SpecialtyID)
	if err != nil {
		return nil, err
	}

	doctor := &models.Doctor{
		DoctorName:  request.DoctorName,
		SpecialtyID: &specialtyID,
	}
	return uc.DoctorRepository.Create(ctx, doctor)
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error) {
	objectID, err := utils.ParseObjectID(doctorID)
	if err != nil {
		return nil, err
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrNotFound("Doctor", doctorID)
	}

	if request.DoctorName != nil {
		doctor.DoctorName = *request.DoctorName
	}
	if request.SpecialtyID != nil {
		specialtyID, err := utils.ParseObjectID(*request.SpecialtyID)
		if err != nil {
			return nil, err
		}
		doctor.SpecialtyID = &specialtyID
	}

	if messages := utils.ValidateStruct(doctor); messages != nil {
		return nil, exceptions.ErrValidation(messages)
	}

	if err := uc.DoctorRepository.Update(ctx, doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	objectID, err := utils.ParseObjectID(doctorID)
	if err != nil {
		return nil, err
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrNotFound("Doctor", doctorID)
	}

	if err := uc.DoctorRepository.Delete(ctx, objectID); err != nil {
		return nil, err
	}
	return doctor, nil
}

func buildDoctorResponse(doctor *models.Doctor, specialtyByID map[primitive.ObjectID]models.Specialty) responses.Doctor {
	response := responses.Doctor{
		ID:         doctor.ID.Hex(),
		DoctorName: doctor.DoctorName,
	}
	if doctor.SpecialtyID != nil {
		if specialty, ok := specialtyByID[*doctor.SpecialtyID]; ok {
			response.SpecialtyID = &responses.SpecialtyRef{
				ID:            specialty.ID.Hex(),
				SpecialtyName: specialty.SpecialtyName,
			}
		}
	}
	return response
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
