package exceptions

import "fmt"

// CustomError is the single error type the dispatch layer knows how to map
// onto the wire. StatusCode and DevMessage never serialize; everything else
// is the exact error envelope the API documents.
type CustomError struct {
	StatusCode     int      `json:"-"`
	Status         string   `json:"status"`
	Message        string   `json:"message"`
	Errors         []string `json:"errors,omitempty"`
	Field          string   `json:"field,omitempty"`
	Path           string   `json:"path,omitempty"`
	AllowedMethods []string `json:"allowedMethods,omitempty"`
	DevMessage     string   `json:"-"`
}

func (e *CustomError) Error() string {
	if e.DevMessage != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.DevMessage)
	}
	return e.Message
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode: statusCode,
		Status:     "error",
		Message:    clientMessage,
		DevMessage: devMessage,
	}
}

func WrapWithError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode: statusCode,
		Status:     "error",
		Message:    clientMessage,
		DevMessage: devMessage,
	}
}
