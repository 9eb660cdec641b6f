package availabilities

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

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
	}
}

func (ctrl *AvailabilityController) GetAvailabilities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.GetAvailabilities(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *AvailabilityController) GetAvailabilityByID(w http.ResponseWriter, r *http.Request) {
	availabilityID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.GetAvailability(ctx, availabilityID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *AvailabilityController) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateAvailability)
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

	result, err := ctrl.AvailabilityUsecase.CreateAvailability(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, result)
}

func (ctrl *AvailabilityController) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	availabilityID := chi.URLParam(r, "id")

	request := new(requests.UpdateAvailability)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.UpdateAvailability(ctx, availabilityID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *AvailabilityController) DeleteAvailability(w http.ResponseWriter, r *http.Request) {
	availabilityID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.DeleteAvailability(ctx, availabilityID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}
