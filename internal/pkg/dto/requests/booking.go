package requests

// CreateBooking uses the canonical four-reference schema. Status defaults to
// confirmed when omitted; any provided value must be in the enum.
type CreateBooking struct {
	Status          string `json:"status" validate:"omitempty,oneof=confirmed completed cancelled"`
	PatientID       string `json:"patientId" validate:"required"`
	DoctorID        string `json:"doctorId" validate:"required"`
	MedicalCentreID string `json:"medicalCentreId" validate:"required"`
	AvailabilityID  string `json:"availabilityId" validate:"required"`
}

type UpdateBooking struct {
	Status          *string `json:"status" validate:"omitempty,oneof=confirmed completed cancelled"`
	PatientID       *string `json:"patientId" validate:"omitempty,notblank"`
	DoctorID        *string `json:"doctorId" validate:"omitempty,notblank"`
	MedicalCentreID *string `json:"medicalCentreId" validate:"omitempty,notblank"`
	AvailabilityID  *string `json:"availabilityId" validate:"omitempty,notblank"`
}
