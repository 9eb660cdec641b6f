package exceptions

import (
	"bookadoc-service/internal/pkg/constvars"
	"fmt"
)

var (
	// ErrValidation carries every failing field message at once; callers
	// accumulate, they do not short-circuit on the first failure.
	ErrValidation = func(errors []string) *CustomError {
		customError := WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientValidationFailed, constvars.ErrDevValidationFailed)
		customError.Errors = errors
		return customError
	}
	ErrNotFound = func(resource, id string) *CustomError {
		return WrapWithoutError(constvars.StatusNotFound, fmt.Sprintf("%s with id %s not found", resource, id), "document lookup returned no result")
	}
	ErrDuplicateKey = func(field string) *CustomError {
		customError := WrapWithoutError(constvars.StatusConflict, constvars.ErrClientDuplicateValue, constvars.ErrDevDBDuplicateKey)
		customError.Field = field
		return customError
	}
	ErrInvalidID = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidIDFormat, constvars.ErrDevDBStringNotObjectID)
	}
	ErrPageNotFound = func(path string) *CustomError {
		customError := WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientPageNotFound, "no route matched the request path")
		customError.Path = path
		return customError
	}
	ErrMethodNotAllowed = func(allowedMethods []string) *CustomError {
		customError := WrapWithoutError(constvars.StatusMethodNotAllowed, constvars.ErrClientMethodNotAllowed, "method not registered for the matched route")
		customError.AllowedMethods = allowedMethods
		return customError
	}

	// Auth
	ErrTokenMissing = func() *CustomError {
		return WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNoTokenProvided, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenExpired = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientTokenExpired, constvars.ErrDevAuthTokenExpired)
	}
	ErrTokenInvalid = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientTokenInvalid, constvars.ErrDevAuthTokenInvalid)
	}
	ErrAuthInternal = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientAuthInternal, constvars.ErrDevAuthSigningMethod)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalError, constvars.ErrDevAuthGenerateToken)
	}
	ErrInvalidEmailOrPassword = func() *CustomError {
		return WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientInvalidEmailOrPassword, "credential comparison failed")
	}
	ErrInvalidCredentials = func() *CustomError {
		return WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientInvalidCredentials, "credential comparison failed")
	}
	ErrHashPassword = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalError, constvars.ErrDevFailedToHashPassword)
	}

	// Request parsing
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidRequestBody, constvars.ErrDevCannotParseJSON)
	}
	ErrBadRequest = func(clientMessage string) *CustomError {
		return WrapWithoutError(constvars.StatusBadRequest, clientMessage, "request rejected before dispatch")
	}

	// Mongo
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalError, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalError, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalError, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalError, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientInternalError, constvars.ErrDevDBFailedToIterateDocuments)
	}
)
