package requests

type CreateDoctor struct {
	DoctorName  string `json:"doctorName" validate:"required,notblank"`
	SpecialtyID string `json:"specialtyId" validate:"required"`
}

type UpdateDoctor struct {
	DoctorName  *string `json:"doctorName" validate:"omitempty,notblank"`
	SpecialtyID *string `json:"specialtyId" validate:"omitempty,notblank"`
}
