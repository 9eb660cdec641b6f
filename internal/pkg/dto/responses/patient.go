package responses

import "bookadoc-service/internal/app/models"

// PatientCreated is the sign-up response: the created record together with a
// freshly issued bearer token (auto-login on sign-up).
type PatientCreated struct {
	NewPatient *models.Patient `json:"newPatient"`
	Token      string          `json:"token"`
}

type PatientLogin struct {
	Status  string          `json:"status"`
	Patient *models.Patient `json:"patient"`
	Token   string          `json:"token"`
}

type AuthLogin struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}
