package requests

type CreateSpecialty struct {
	SpecialtyName string `json:"specialtyName" validate:"required,notblank"`
	Description   string `json:"description" validate:"required,notblank"`
}

type UpdateSpecialty struct {
	SpecialtyName *string `json:"specialtyName" validate:"omitempty,notblank"`
	Description   *string `json:"description" validate:"omitempty,notblank"`
}
