package doctoravailabilities

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

type doctorAvailabilityUsecase struct {
	DoctorAvailabilityRepository contracts.DoctorAvailabilityRepository
	DoctorRepository             contracts.DoctorRepository
	AvailabilityRepository       contracts.AvailabilityRepository
}

func NewDoctorAvailabilityUsecase(
	doctorAvailabilityMongoRepository contracts.DoctorAvailabilityRepository,
	doctorMongoRepository contracts.DoctorRepository,
	availabilityMongoRepository contracts.AvailabilityRepository,
) contracts.DoctorAvailabilityUsecase {
	return &doctorAvailabilityUsecase{
		DoctorAvailabilityRepository: doctorAvailabilityMongoRepository,
		DoctorRepository:             doctorMongoRepository,
		AvailabilityRepository:       availabilityMongoRepository,
	}
}

func (uc *doctorAvailabilityUsecase) GetDoctorAvailabilities(ctx context.Context) ([]responses.DoctorAvailability, error) {
	links, err := uc.DoctorAvailabilityRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	doctorIDs := make([]primitive.ObjectID, 0, len(links))
	availabilityIDs := make([]primitive.ObjectID, 0, len(links))
	for _, link := range links {
		doctorIDs = append(doctorIDs, link.DoctorID)
		availabilityIDs = append(availabilityIDs, link.AvailabilityID)
	}

	doctorByID, availabilityByID, err := uc.loadRefs(ctx, doctorIDs, availabilityIDs)
	if err != nil {
		return nil, err
	}

	result := make([]responses.DoctorAvailability, 0, len(links))
	for _, link := range links {
		result = append(result, buildDoctorAvailabilityResponse(&link, doctorByID, availabilityByID))
	}
	return result, nil
}

func (uc *doctorAvailabilityUsecase) GetDoctorAvailability(ctx context.Context, doctorAvailabilityID string) (*responses.DoctorAvailability, error) {
	objectID, err := utils.ParseObjectID(doctorAvailabilityID)
	if err != nil {
		return nil, err
	}

	link, err := uc.DoctorAvailabilityRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, exceptions.ErrNotFound("Doctor availability", doctorAvailabilityID)
	}

	doctorByID, availabilityByID, err := uc.loadRefs(ctx,
		[]primitive.ObjectID{link.DoctorID},
		[]primitive.ObjectID{link.AvailabilityID},
	)
	if err != nil {
		return nil, err
	}

	response := buildDoctorAvailabilityResponse(link, doctorByID, availabilityByID)
	return &response, nil
}

func (uc *doctorAvailabilityUsecase) CreateDoctorAvailability(ctx context.Context, request *requests.CreateDoctorAvailability) (*models.DoctorAvailability, error) {
	doctorID, err := utils.ParseObjectID(request.DoctorID)
	if err != nil {
		return nil, err
	}
	availabilityID, err := utils.ParseObjectID(request.AvailabilityID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	link := &models.DoctorAvailability{
		DoctorID:       doctorID,
		AvailabilityID: availabilityID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return uc.DoctorAvailabilityRepository.Create(ctx, link)
}

func (uc *doctorAvailabilityUsecase) UpdateDoctorAvailability(ctx context.Context, doctorAvailabilityID string, request *requests.UpdateDoctorAvailability) (*models.DoctorAvailability, error) {
	objectID, err := utils.ParseObjectID(doctorAvailabilityID)
	if err != nil {
		return nil, err
	}

	link, err := uc.DoctorAvailabilityRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, exceptions.ErrNotFound("Doctor availability", doctorAvailabilityID)
	}

	if request.DoctorID != nil {
		doctorID, err := utils.ParseObjectID(*request.DoctorID)
		if err != nil {
			return nil, err
		}
		link.DoctorID = doctorID
	}
	if request.AvailabilityID != nil {
		availabilityID, err := utils.ParseObjectID(*request.AvailabilityID)
		if err != nil {
			return nil, err
		}
		link.AvailabilityID = availabilityID
	}
	link.UpdatedAt = time.Now()

	if err := uc.DoctorAvailabilityRepository.Update(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (uc *doctorAvailabilityUsecase) DeleteDoctorAvailability(ctx context.Context, doctorAvailabilityID string) (*models.DoctorAvailability, error) {
	objectID, err := utils.ParseObjectID(doctorAvailabilityID)
	if err != nil {
		return nil, err
	}

	link, err := uc.DoctorAvailabilityRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, exceptions.ErrNotFound("Doctor availability", doctorAvailabilityID)
	}

	if err := uc.DoctorAvailabilityRepository.Delete(ctx, objectID); err != nil {
		return nil, err
	}
	return link, nil
}

func (uc *doctorAvailabilityUsecase) loadRefs(
	ctx context.Context,
	doctorIDs, availabilityIDs []primitive.ObjectID,
) (map[primitive.ObjectID]models.Doctor, map[primitive.ObjectID]models.Availability, error) {
	doctors, err := uc.DoctorRepository.FindByIDs(ctx, doctorIDs)
	if err != nil {
		return nil, nil, err
	}
	availabilities, err := uc.AvailabilityRepository.FindByIDs(ctx, availabilityIDs)
	if err != nil {
		return nil, nil, err
	}

	doctorByID := make(map[primitive.ObjectID]models.Doctor, len(doctors))
	for _, doctor := range doctors {
		doctorByID[doctor.ID] = doctor
	}
	availabilityByID := make(map[primitive.ObjectID]models.Availability, len(availabilities))
	for _, availability := range availabilities {
		availabilityByID[availability.ID] = availability
	}
	return doctorByID, availabilityByID, nil
}

func buildDoctorAvailabilityResponse(
	link *models.DoctorAvailability,
	doctorByID map[primitive.ObjectID]models.Doctor,
	availabilityByID map[primitive.ObjectID]models.Availability,
) responses.DoctorAvailability {
	response := responses.DoctorAvailability{
		ID:        link.ID.Hex(),
		CreatedAt: link.CreatedAt,
		UpdatedAt: link.UpdatedAt,
	}
	if doctor, ok := doctorByID[link.DoctorID]; ok {
		response.DoctorID = &responses.DoctorRef{
			ID:         doctor.ID.Hex(),
			DoctorName: doctor.DoctorName,
		}
	}
	if availability, ok := availabilityByID[link.AvailabilityID]; ok {
		isBooked := availability.IsBooked
		response.AvailabilityID = &responses.AvailabilityRef{
			ID:        availability.ID.Hex(),
			Date:      availability.Date,
			StartTime: availability.StartTime,
			EndTime:   availability.EndTime,
			IsBooked:  &isBooked,
		}
	}
	return response
}
