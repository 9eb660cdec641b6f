package utils

import (
	"errors"
	"net/http"

	"bookadoc-service/internal/pkg/constvars"
	"bookadoc-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BuildSuccessResponse writes the resource as raw JSON. Successful responses
// carry no envelope; errors do.
func BuildSuccessResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// BuildErrorResponse normalizes any error into the documented error envelope.
// Errors that are not a CustomError become an opaque 500; internal detail is
// logged, never sent.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		log.Error("unclassified error reached the normalizer", zap.Error(err))
		customErr = exceptions.WrapWithoutError(
			constvars.StatusInternalServerError,
			constvars.ErrClientInternalError,
			err.Error(),
		)
	} else {
		log.Error(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
			zap.String("client_message", customErr.Message),
		)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(customErr.StatusCode)
	json.NewEncoder(w).Encode(customErr)
}
