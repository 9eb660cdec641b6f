package doctorcentres

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

type DoctorCentreController struct {
	Log                 *zap.Logger
	DoctorCentreUsecase contracts.DoctorCentreUsecase
}

func NewDoctorCentreController(logger *zap.Logger, doctorCentreUsecase contracts.DoctorCentreUsecase) *DoctorCentreController {
	return &DoctorCentreController{
		Log:                 logger,
		DoctorCentreUsecase: doctorCentreUsecase,
	}
}

func (ctrl *DoctorCentreController) GetDoctorCentres(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorCentreUsecase.GetDoctorCentres(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *DoctorCentreController) GetDoctorCentreByID(w http.ResponseWriter, r *http.Request) {
	doctorCentreID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorCentreUsecase.GetDoctorCentre(ctx, doctorCentreID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *DoctorCentreController) CreateDoctorCentre(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateDoctorCentre)
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

	result, err := ctrl.DoctorCentreUsecase.CreateDoctorCentre(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, result)
}

func (ctrl *DoctorCentreController) UpdateDoctorCentre(w http.ResponseWriter, r *http.Request) {
	doctorCentreID := chi.URLParam(r, "id")

	request := new(requests.UpdateDoctorCentre)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorCentreUsecase.UpdateDoctorCentre(ctx, doctorCentreID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *DoctorCentreController) DeleteDoctorCentre(w http.ResponseWriter, r *http.Request) {
	doctorCentreID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorCentreUsecase.DeleteDoctorCentre(ctx, doctorCentreID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}
