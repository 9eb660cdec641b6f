package patients

import (
	"context"
	"strings"

	"bookadoc-service/internal/app/config"
	"bookadoc-service/internal/app/contracts"
	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"
	"bookadoc-service/internal/pkg/dto/responses"
	"bookadoc-service/internal/pkg/exceptions"
	"bookadoc-service/internal/pkg/metrics"
	"bookadoc-service/internal/pkg/utils"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Metrics           *metrics.Collector
	InternalConfig    *config.InternalConfig
}

func NewPatientUsecase(
	patientMongoRepository contracts.PatientRepository,
	collector *metrics.Collector,
	internalConfig *config.InternalConfig,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientMongoRepository,
		Metrics:           collector,
		InternalConfig:    internalConfig,
	}
}

func (uc *patientUsecase) GetPatients(ctx context.Context) ([]models.Patient, error) {
	return uc.PatientRepository.FindAll(ctx)
}

func (uc *patientUsecase) GetPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := utils.ParseObjectID(patientID)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrNotFound("Patient", patientID)
	}
	return patient, nil
}

// CreatePatient signs the patient up and logs them in at once: the response
// carries both the stored record and a fresh bearer token.
func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.PatientCreated, error) {
	// Emails are stored lowercased so lookups and the unique index stay
	// case-insensitive.
	email := strings.ToLower(request.Email)

	existing, err := uc.PatientRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDuplicateKey("email")
	}

	hashedPassword, err := utils.HashPassword(request.Password, uc.InternalConfig.App.BcryptCost)
	if err != nil {
		return nil, err
	}

	patient := &models.Patient{
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Email:       email,
		DateOfBirth: request.DateOfBirth,
		Address: models.Address{
			Street: request.Address.Street,
			City:   request.Address.City,
		},
		PhoneNumber: request.PhoneNumber,
		Password:    hashedPassword,
	}

	created, err := uc.PatientRepository.Create(ctx, patient)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateAuthJWT(
		created.ID.Hex(),
		created.Email,
		uc.InternalConfig.JWT.Secret,
		uc.InternalConfig.JWT.ExpTimeInHour,
	)
	if err != nil {
		return nil, err
	}

	uc.Metrics.PatientsRegisteredTotal.Inc()

	return &responses.PatientCreated{
		NewPatient: created,
		Token:      token,
	}, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	objectID, err := utils.ParseObjectID(patientID)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrNotFound("Patient", patientID)
	}

	if request.Email != nil {
		email := strings.ToLower(*request.Email)
		if email != patient.Email {
			existing, err := uc.PatientRepository.FindByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, exceptions.ErrDuplicateKey("email")
			}
		}
		patient.Email = email
	}

	if request.FirstName != nil {
		patient.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		patient.LastName = *request.LastName
	}
	if request.DateOfBirth != nil {
		patient.DateOfBirth = *request.DateOfBirth
	}
	if request.Address != nil {
		patient.Address = models.Address{
			Street: request.Address.Street,
			City:   request.Address.City,
		}
	}
	if request.PhoneNumber != nil {
		patient.PhoneNumber = *request.PhoneNumber
	}
	if request.Password != nil {
		hashedPassword, err := utils.HashPassword(*request.Password, uc.InternalConfig.App.BcryptCost)
		if err != nil {
			return nil, err
		}
		patient.Password = hashedPassword
	}

	// The merged record must still pass every field rule, the same as a
	// freshly created one.
	if messages := utils.ValidateStruct(patient); messages != nil {
		return nil, exceptions.ErrValidation(messages)
	}

	if err := uc.PatientRepository.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// DeletePatient returns the record as it was before removal.
func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := utils.ParseObjectID(patientID)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrNotFound("Patient", patientID)
	}

	if err := uc.PatientRepository.Delete(ctx, objectID); err != nil {
		return nil, err
	}
	return patient, nil
}

func (uc *patientUsecase) Login(ctx context.Context, request *requests.LoginPatient) (*models.Patient, string, error) {
	patient, err := uc.PatientRepository.FindByEmail(ctx, strings.ToLower(request.Email))
	if err != nil {
		return nil, "", err
	}
	if patient == nil || !utils.CheckPasswordHash(request.Password, patient.Password) {
		uc.Metrics.PatientLoginsTotal.WithLabelValues("failure").Inc()
		return nil, "", exceptions.ErrInvalidEmailOrPassword()
	}

	token, err := utils.GenerateAuthJWT(
		patient.ID.Hex(),
		patient.Email,
		uc.InternalConfig.JWT.Secret,
		uc.InternalConfig.JWT.ExpTimeInHour,
	)
	if err != nil {
		return nil, "", err
	}

	uc.Metrics.PatientLoginsTotal.WithLabelValues("success").Inc()
	return patient, token, nil
}
