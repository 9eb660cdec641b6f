package doctorcentres

import (
	"context"

	"bookadoc-service/internal/app/contracts"
	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/dto/requests"
	"bookadoc-service/internal/pkg/dto/responses"
	"bookadoc-service/internal/pkg/exceptions"
	"bookadoc-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type doctorCentreUsecase struct {
	DoctorCentreRepository  contracts.DoctorCentreRepository
	DoctorRepository        contracts.DoctorRepository
	MedicalCentreRepository contracts.MedicalCentreRepository
}

func NewDoctorCentreUsecase(
	doctorCentreMongoRepository contracts.DoctorCentreRepository,
	doctorMongoRepository contracts.DoctorRepository,
	medicalCentreMongoRepository contracts.MedicalCentreRepository,
) contracts.DoctorCentreUsecase {
	return &doctorCentreUsecase{
		DoctorCentreRepository:  doctorCentreMongoRepository,
		DoctorRepository:        doctorMongoRepository,
		MedicalCentreRepository: medicalCentreMongoRepository,
	}
}

func (uc *doctorCentreUsecase) GetDoctorCentres(ctx context.Context) ([]responses.DoctorCentre, error) {
	doctorCentres, err := uc.DoctorCentreRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	doctorIDs := make([]primitive.ObjectID, 0, len(doctorCentres))
	medicalCentreIDs := make([]primitive.ObjectID, 0, len(doctorCentres))
	for _, doctorCentre := range doctorCentres {
		doctorIDs = append(doctorIDs, doctorCentre.DoctorID)
		medicalCentreIDs = append(medicalCentreIDs, doctorCentre.MedicalCentreID)
	}

	doctorByID, medicalCentreByID, err := uc.loadRefs(ctx, doctorIDs, medicalCentreIDs)
	if err != nil {
		return nil, err
	}

	result := make([]responses.DoctorCentre, 0, len(doctorCentres))
	for _, doctorCentre := range doctorCentres {
		result = append(result, buildDoctorCentreResponse(&doctorCentre, doctorByID, medicalCentreByID))
	}
	return result, nil
}

func (uc *doctorCentreUsecase) GetDoctorCentre(ctx context.Context, doctorCentreID string) (*responses.DoctorCentre, error) {
	objectID, err := utils.ParseObjectID(doctorCentreID)
	if err != nil {
		return nil, err
	}

	doctorCentre, err := uc.DoctorCentreRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if doctorCentre == nil {
		return nil, exceptions.ErrNotFound("Doctor centre", doctorCentreID)
	}

	doctorByID, medicalCentreByID, err := uc.loadRefs(ctx,
		[]primitive.ObjectID{doctorCentre.DoctorID},
		[]primitive.ObjectID{doctorCentre.MedicalCentreID},
	)
	if err != nil {
		return nil, err
	}

	response := buildDoctorCentreResponse(doctorCentre, doctorByID, medicalCentreByID)
	return &response, nil
}

func (uc *doctorCentreUsecase) CreateDoctorCentre(ctx context.Context, request *requests.CreateDoctorCentre) (*models.DoctorCentre, error) {
	doctorID, err := utils.ParseObjectID(request.DoctorID)
	if err != nil {
		return nil, err
	}
	medicalCentreID, err := utils.ParseObjectID(request.MedicalCentreID)
	if err != nil {
		return nil, err
	}

	doctorCentre := &models.DoctorCentre{
		DoctorID:        doctorID,
		MedicalCentreID: medicalCentreID,
	}
	return uc.DoctorCentreRepository.Create(ctx, doctorCentre)
}

func (uc *doctorCentreUsecase) UpdateDoctorCentre(ctx context.Context, doctorCentreID string, request *requests.UpdateDoctorCentre) (*models.DoctorCentre, error) {
	objectID, err := utils.ParseObjectID(doctorCentreID)
	if err != nil {
		return nil, err
	}

	doctorCentre, err := uc.DoctorCentreRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if doctorCentre == nil {
		return nil, exceptions.ErrNotFound("Doctor centre", doctorCentreID)
	}

	if request.DoctorID != nil {
		doctorID, err := utils.ParseObjectID(*request.DoctorID)
		if err != nil {
			return nil, err
		}
		doctorCentre.DoctorID = doctorID
	}
	if request.MedicalCentreID != nil {
		medicalCentreID, err := utils.ParseObjectID(*request.MedicalCentreID)
		if err != nil {
			return nil, err
		}
		doctorCentre.MedicalCentreID = medicalCentreID
	}

	if err := uc.DoctorCentreRepository.Update(ctx, doctorCentre); err != nil {
		return nil, err
	}
	return doctorCentre, nil
}

func (uc *doctorCentreUsecase) DeleteDoctorCentre(ctx context.Context, doctorCentreID string) (*models.DoctorCentre, error) {
	objectID, err := utils.ParseObjectID(doctorCentreID)
	if err != nil {
		return nil, err
	}

	doctorCentre, err := uc.DoctorCentreRepository.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if doctorCentre == nil {
		return nil, exceptions.ErrNotFound("Doctor centre", doctorCentreID)
	}

	if err := uc.DoctorCentreRepository.Delete(ctx, objectID); err != nil {
		return nil, err
	}
	return doctorCentre, nil
}

func (uc *doctorCentreUsecase) loadRefs(
	ctx context.Context,
	doctorIDs, medicalCentreIDs []primitive.ObjectID,
) (map[primitive.ObjectID]models.Doctor, map[primitive.ObjectID]models.MedicalCentre, error) {
	doctors, err := uc.DoctorRepository.FindByIDs(ctx, doctorIDs)
	if err != nil {
		return nil, nil, err
	}
	medicalCentres, err := uc.MedicalCentreRepository.FindByIDs(ctx, medicalCentreIDs)
	if err != nil {
		return nil, nil, err
	}

	doctorByID := make(map[primitive.ObjectID]models.Doctor, len(doctors))
	for _, doctor := range doctors {
		doctorByID[doctor.ID] = doctor
	}
	medicalCentreByID := make(map[primitive.ObjectID]models.MedicalCentre, len(medicalCentres))
	for _, medicalCentre := range medicalCentres {
		medicalCentreByID[medicalCentre.ID] = medicalCentre
	}
	return doctorByID, medicalCentreByID, nil
}

func buildDoctorCentreResponse(
	doctorCentre *models.DoctorCentre,
	doctorByID map[primitive.ObjectID]models.Doctor,
	medicalCentreByID map[primitive.ObjectID]models.MedicalCentre,
) responses.DoctorCentre {
	response := responses.DoctorCentre{
		ID: doctorCentre.ID.Hex(),
	}
	if doctor, ok := doctorByID[doctorCentre.DoctorID]; ok {
		response.DoctorID = &responses.DoctorRef{
			ID:         doctor.ID.Hex(),
			DoctorName: doctor.DoctorName,
		}
	}
	if medicalCentre, ok := medicalCentreByID[doctorCentre.MedicalCentreID]; ok {
		response.MedicalCentreID = &responses.MedicalCentreRef{
			ID:                medicalCentre.ID.Hex(),
			MedicalCentreName: medicalCentre.MedicalCentreName,
		}
	}
	return response
}
