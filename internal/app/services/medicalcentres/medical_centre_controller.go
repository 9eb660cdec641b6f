package medicalcentres

import (
	"context"
	"net/http"
	"time"

	"bookadoc-service/internal/app/contracts"
	"bookadoc-service/internal/pkg/constvars"
	"bookadoc-service/internal/pkg/dto/requests"
	"bookadoc-service/internal/pkg/exceptions"
	"bookadoc-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MedicalCentreController struct {
	Log                  *zap.Logger
	MedicalCentreUsecase contracts.MedicalCentreUsecase
}

func NewMedicalCentreController(logger *zap.Logger, medicalCentreUsecase contracts.MedicalCentreUsecase) *MedicalCentreController {
	return &MedicalCentreController{
		Log:                  logger,
		MedicalCentreUsecase: medicalCentreUsecase,
	}
}

func (ctrl *MedicalCentreController) GetMedicalCentres(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MedicalCentreUsecase.GetMedicalCentres(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *MedicalCentreController) GetMedicalCentreByID(w http.ResponseWriter, r *http.Request) {
	medicalCentreID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MedicalCentreUsecase.GetMedicalCentre(ctx, medicalCentreID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *MedicalCentreController) CreateMedicalCentre(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateMedicalCentre)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if messages := utils.ValidateStruct(request); messages != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrValidation(messages))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MedicalCentreUsecase.CreateMedicalCentre(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, result)
}

func (ctrl *MedicalCentreController) UpdateMedicalCentre(w http.ResponseWriter, r *http.Request) {
	medicalCentreID := chi.URLParam(r, "id")

	request := new(requests.UpdateMedicalCentre)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MedicalCentreUsecase.UpdateMedicalCentre(ctx, medicalCentreID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *MedicalCentreController) DeleteMedicalCentre(w http.ResponseWriter, r *http.Request) {
	medicalCentreID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.MedicalCentreUsecase.DeleteMedicalCentre(ctx, medicalCentreID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}
