package availabilities

import (
	"context"

	"bookadoc-service/internal/app/contracts"
	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"
	"bookadoc-service/internal/pkg/exceptions"
	"bookadoc-service/internal/pkg/utils"
)

type availabilityUsecase struct {
	AvailabilityRepository contracts.AvailabilityRepository
}

func NewAvailabilityUsecase(availabilityMongoRepository contracts.AvailabilityRepository) contracts.AvailabilityUsecase {
	return &availabilityUsecase{
		AvailabilityRepository: availabilityMongoRepository,
	}
}

func (uc *availabilityUsecase) GetAvailabilities(ctx context.Context) ([]models.Availability, error) {
	return uc.AvailabilityRepository.FindAll(ctx)
}

func (uc *availabilityUsecase) GetAvailability(ctx context.Context, availabilityID string) (*models.Availability, error) {
	objectID, err := utils.ParseObjectID(availabilityID)
	if err != nil {
		return nil, err
	}

	availability, err := uc.AvailabilityRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if availability == nil {
		return nil, exceptions.ErrNotFound("Availability", availabilityID)
	}
	return availability, nil
}

func (uc *availabilityUsecase) CreateAvailability(ctx context.Context, request *requests.CreateAvailability) (*models.Availability, error) {
	availability := &models.Availability{
		Date:      request.Date,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
	}
	if request.IsBooked != nil {
		availability.IsBooked = *request.IsBooked
	}
	return uc.AvailabilityRepository.Create(ctx, availability)
}

func (uc *availabilityUsecase) UpdateAvailability(ctx context.Context, availabilityID string, request *requests.UpdateAvailability) (*models.Availability, error) {
	objectID, err := utils.ParseObjectID(availabilityID)
	if err != nil {
		return nil, err
	}

	availability, err := uc.AvailabilityRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if availability == nil {
		return nil, exceptions.ErrNotFound("Availability", availabilityID)
	}

	if request.Date != nil {
		availability.Date = *request.Date
	}
	if request.StartTime != nil {
		availability.StartTime = *request.StartTime
	}
	if request.EndTime != nil {
		availability.EndTime = *request.EndTime
	}
	if request.IsBooked != nil {
		availability.IsBooked = *request.IsBooked
	}

	if messages := utils.ValidateStruct(availability); messages != nil {
		return nil, exceptions.ErrValidation(messages)
	}

	if err := uc.AvailabilityRepository.Update(ctx, availability); err != nil {
		return nil, err
	}
	return availability, nil
}

func (uc *availabilityUsecase) DeleteAvailability(ctx context.Context, availabilityID string) (*models.Availability, error) {
	objectID, err := utils.ParseObjectID(availabilityID)
	if err != nil {
		return nil, err
	}

	availability, err := uc.AvailabilityRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if availability == nil {
		return nil, exceptions.ErrNotFound("Availability", availabilityID)
	}

	if err := uc.AvailabilityRepository.Delete(ctx, objectID); err != nil {
		return nil, err
	}
	return availability, nil
}
