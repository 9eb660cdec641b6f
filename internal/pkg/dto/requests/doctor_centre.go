package requests

type CreateDoctorCentre struct {
	DoctorID        string `json:"doctorId" validate:"required"`
	MedicalCentreID string `json:"medicalCentreId" validate:"required"`
}

type UpdateDoctorCentre struct {
	DoctorID        *string `json:"doctorId" validate:"omitempty,notblank"`
	MedicalCentreID *string `json:"medicalCentreId" validate:"omitempty,notblank"`
}
