package medicalcentres

import (
	"context"
	"strings"

	"bookadoc-service/internal/app/contracts"
	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"
	"bookadoc-service/internal/pkg/exceptions"
	"bookadoc-service/internal/pkg/utils"
)

type medicalCentreUsecase struct {
	MedicalCentreRepository contracts.MedicalCentreRepository
}

func NewMedicalCentreUsecase(medicalCentreMongoRepository contracts.MedicalCentreRepository) contracts.MedicalCentreUsecase {
	return &medicalCentreUsecase{
		MedicalCentreRepository: medicalCentreMongoRepository,
	}
}

func (uc *medicalCentreUsecase) GetMedicalCentres(ctx context.Context) ([]models.MedicalCentre, error) {
	return uc.MedicalCentreRepository.FindAll(ctx)
}

func (uc *medicalCentreUsecase) GetMedicalCentre(ctx context.Context, medicalCentreID string) (*models.MedicalCentre, error) {
	objectID, err := utils.ParseObjectID(medicalCentreID)
	if err != nil {
		return nil, err
	}

	medicalCentre, err := uc.MedicalCentreRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if medicalCentre == nil {
		return nil, exceptions.ErrNotFound("Medical centre", medicalCentreID)
	}
	return medicalCentre, nil
}

func (uc *medicalCentreUsecase) CreateMedicalCentre(ctx context.Context, request *requests.CreateMedicalCentre) (*models.MedicalCentre, error) {
	// Contact emails are stored lowercased, matching the unique index.
	contactEmail := strings.ToLower(request.Contacts.Email)

	existing, err := uc.MedicalCentreRepository.FindByContactEmail(ctx, contactEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDuplicateKey("contacts.email")
	}

	medicalCentre := &models.MedicalCentre{
		MedicalCentreName: request.MedicalCentreName,
		OperatingHours:    request.OperatingHours,
		Address: models.Address{
			Street: request.Address.Street,
			City:   request.Address.City,
		},
		Contacts: models.Contacts{
			Email: contactEmail,
			Phone: request.Contacts.Phone,
		},
	}
	return uc.MedicalCentreRepository.Create(ctx, medicalCentre)
}

func (uc *medicalCentreUsecase) UpdateMedicalCentre(ctx context.Context, medicalCentreID string, request *requests.UpdateMedicalCentre) (*models.MedicalCentre, error) {
	objectID, err := utils.ParseObjectID(medicalCentreID)
	if err != nil {
		return nil, err
	}

	medicalCentre, err := uc.MedicalCentreRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if medicalCentre == nil {
		return nil, exceptions.ErrNotFound("Medical centre", medicalCentreID)
	}

	if request.Contacts != nil {
		contactEmail := strings.ToLower(request.Contacts.Email)
		if contactEmail != medicalCentre.Contacts.Email {
			existing, err := uc.MedicalCentreRepository.FindByContactEmail(ctx, contactEmail)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, exceptions.ErrDuplicateKey("contacts.email")
			}
		}
	}

	if request.MedicalCentreName != nil {
		medicalCentre.MedicalCentreName = *request.MedicalCentreName
	}
	if request.OperatingHours != nil {
		medicalCentre.OperatingHours = *request.OperatingHours
	}
	if request.Address != nil {
		medicalCentre.Address = models.Address{
			Street: request.Address.Street,
			City:   request.Address.City,
		}
	}
	if request.Contacts != nil {
		medicalCentre.Contacts = models.Contacts{
			Email: strings.ToLower(request.Contacts.Email),
			Phone: request.Contacts.Phone,
		}
	}

	if messages := utils.ValidateStruct(medicalCentre); messages != nil {
		return nil, exceptions.ErrValidation(messages)
	}

	if err := uc.MedicalCentreRepository.Update(ctx, medicalCentre); err != nil {
		return nil, err
	}
	return medicalCentre, nil
}

func (uc *medicalCentreUsecase) DeleteMedicalCentre(ctx context.Context, medicalCentreID string) (*models.MedicalCentre, error) {
	objectID, err := utils.ParseObjectID(medicalCentreID)
	if err != nil {
		return nil, err
	}

	medicalCentre, err := uc.MedicalCentreRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if medicalCentre == nil {
		return nil, exceptions.ErrNotFound("Medical centre", medicalCentreID)
	}

	if err := uc.MedicalCentreRepository.Delete(ctx, objectID); err != nil {
		return nil, err
	}
	return medicalCentre, nil
}
