package doctoravailabilities

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

type DoctorAvailabilityController struct {
	Log                       *zap.Logger
	DoctorAvailabilityUsecase contracts.DoctorAvailabilityUsecase
}

func NewDoctorAvailabilityController(logger *zap.Logger, doctorAvailabilityUsecase contracts.DoctorAvailabilityUsecase) *DoctorAvailabilityController {
	return &DoctorAvailabilityController{
		Log:                       logger,
		DoctorAvailabilityUsecase: doctorAvailabilityUsecase,
	}
}

func (ctrl *DoctorAvailabilityController) GetDoctorAvailabilities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorAvailabilityUsecase.GetDoctorAvailabilities(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *DoctorAvailabilityController) GetDoctorAvailabilityByID(w http.ResponseWriter, r *http.Request) {
	doctorAvailabilityID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorAvailabilityUsecase.GetDoctorAvailability(ctx, doctorAvailabilityID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *DoctorAvailabilityController) CreateDoctorAvailability(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateDoctorAvailability)
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

	result, err := ctrl.DoctorAvailabilityUsecase.CreateDoctorAvailability(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, result)
}

func (ctrl *DoctorAvailabilityController) UpdateDoctorAvailability(w http.ResponseWriter, r *http.Request) {
	doctorAvailabilityID := chi.URLParam(r, "id")

	request := new(requests.UpdateDoctorAvailability)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorAvailabilityUsecase.UpdateDoctorAvailability(ctx, doctorAvailabilityID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *DoctorAvailabilityController) DeleteDoctorAvailability(w http.ResponseWriter, r *http.Request) {
	doctorAvailabilityID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorAvailabilityUsecase.DeleteDoctorAvailability(ctx, doctorAvailabilityID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}
