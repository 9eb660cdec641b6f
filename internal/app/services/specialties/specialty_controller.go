package specialties

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

type SpecialtyController struct {
	Log              *zap.Logger
	SpecialtyUsecase contracts.SpecialtyUsecase
}

func NewSpecialtyController(logger *zap.Logger, specialtyUsecase contracts.SpecialtyUsecase) *SpecialtyController {
	return &SpecialtyController{
		Log:              logger,
		SpecialtyUsecase: specialtyUsecase,
	}
}

func (ctrl *SpecialtyController) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SpecialtyUsecase.GetSpecialties(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *SpecialtyController) GetSpecialtyByID(w http.ResponseWriter, r *http.Request) {
	specialtyID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SpecialtyUsecase.GetSpecialty(ctx, specialtyID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *SpecialtyController) CreateSpecialty(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateSpecialty)
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

	result, err := ctrl.SpecialtyUsecase.CreateSpecialty(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, result)
}

func (ctrl *SpecialtyController) UpdateSpecialty(w http.ResponseWriter, r *http.Request) {
	specialtyID := chi.URLParam(r, "id")

	request := new(requests.UpdateSpecialty)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SpecialtyUsecase.UpdateSpecialty(ctx, specialtyID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}

func (ctrl *SpecialtyController) DeleteSpecialty(w http.ResponseWriter, r *http.Request) {
	specialtyID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SpecialtyUsecase.DeleteSpecialty(ctx, specialtyID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}
