package specialties

import (
	"context"

	"bookadoc-service/internal/app/contracts"
	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"
	"bookadoc-service/internal/pkg/exceptions"
	"bookadoc-service/internal/pkg/utils"
)

type specialtyUsecase struct {
	SpecialtyRepository contracts.SpecialtyRepository
}

func NewSpecialtyUsecase(specialtyMongoRepository contracts.SpecialtyRepository) contracts.SpecialtyUsecase {
	return &specialtyUsecase{
		SpecialtyRepository: specialtyMongoRepository,
	}
}

func (uc *specialtyUsecase) GetSpecialties(ctx context.Context) ([]models.Specialty, error) {
	return uc.SpecialtyRepository.FindAll(ctx)
}

func (uc *specialtyUsecase) GetSpecialty(ctx context.Context, specialtyID string) (*models.Specialty, error) {
	objectID, err := utils.ParseObjectID(specialtyID)
	if err != nil {
		return nil, err
	}

	specialty, err := uc.SpecialtyRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if specialty == nil {
		return nil, exceptions.ErrNotFound("Specialty", specialtyID)
	}
	return specialty, nil
}

func (uc *specialtyUsecase) CreateSpecialty(ctx context.Context, request *requests.CreateSpecialty) (*models.Specialty, error) {
	existing, err := uc.SpecialtyRepository.FindByName(ctx, request.SpecialtyName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDuplicateKey("specialtyName")
	}

	specialty := &models.Specialty{
		SpecialtyName: request.SpecialtyName,
		Description:   request.Description,
	}
	return uc.SpecialtyRepository.Create(ctx, specialty)
}

func (uc *specialtyUsecase) UpdateSpecialty(ctx context.Context, specialtyID string, request *requests.UpdateSpecialty) (*models.Specialty, error) {
	objectID, err := utils.ParseObjectID(specialtyID)
	if err != nil {
		return nil, err
	}

	specialty, err := uc.SpecialtyRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if specialty == nil {
		return nil, exceptions.ErrNotFound("Specialty", specialtyID)
	}

	if request.SpecialtyName != nil && *request.SpecialtyName != specialty.SpecialtyName {
		existing, err := uc.SpecialtyRepository.FindByName(ctx, *request.SpecialtyName)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrDuplicateKey("specialtyName")
		}
	}

	if request.SpecialtyName != nil {
		specialty.SpecialtyName = *request.SpecialtyName
	}
	if request.Description != nil {
		specialty.Description = *request.Description
	}

	if messages := utils.ValidateStruct(specialty); messages != nil {
		return nil, exceptions.ErrValidation(messages)
	}

	if err := uc.SpecialtyRepository.Update(ctx, specialty); err != nil {
		return nil, err
	}
	return specialty, nil
}

func (uc *specialtyUsecase) DeleteSpecialty(ctx context.Context, specialtyID string) (*models.Specialty, error) {
	objectID, err := utils.ParseObjectID(specialtyID)
	if err != nil {
		return nil, err
	}

	specialty, err := uc.SpecialtyRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if specialty == nil {
		return nil, exceptions.ErrNotFound("Specialty", specialtyID)
	}

	if err := uc.SpecialtyRepository.Delete(ctx, objectID); err != nil {
		return nil, err
	}
	return specialty, nil
}
