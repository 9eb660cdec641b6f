package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bookadoc-service/internal/app/contracts"
	"bookadoc-service/internal/pkg/constvars"
	"bookadoc-service/internal/pkg/dto/requests"
	"bookadoc-service/internal/pkg/dto/responses"
	"bookadoc-service/internal/pkg/exceptions"
	"bookadoc-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// AuthController serves the token-only login endpoint. It authenticates
// against the same patient credentials as the patient login route but never
// echoes the account record back.
type AuthController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

func NewAuthController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *AuthController {
	return &AuthController{
		Log:            logger,
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.LoginPatient)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if request.Email == "" || request.Password == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrBadRequest(constvars.ErrClientEmailPasswordRequired))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, token, err := ctrl.PatientUsecase.Login(ctx, request)
	if err != nil {
		// This endpoint has always reported bad credentials with its own
		// wording, distinct from the patient login route.
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusUnauthorized {
			err = exceptions.ErrInvalidCredentials()
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, responses.AuthLogin{
		Status: "success",
		Token:  token,
	})
}
