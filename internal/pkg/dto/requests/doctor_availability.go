package requests

type CreateDoctorAvailability struct {
	DoctorID       string `json:"doctorId" validate:"required"`
	AvailabilityID string `json:"availabilityId" validate:"required"`
}

type UpdateDoctorAvailability struct {
	DoctorID       *string `json:"doctorId" validate:"omitempty,notblank"`
	AvailabilityID *string `json:"availabilityId" validate:"omitempty,notblank"`
}
