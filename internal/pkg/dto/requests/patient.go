package requests

import "time"

type AddressPayload struct {
	Street string `json:"street" validate:"required,notblank"`
	City   string `json:"city" validate:"required,notblank"`
}

type CreatePatient struct {
	FirstName   string         `json:"firstName" validate:"required,notblank"`
	LastName    string         `json:"lastName" validate:"required,notblank"`
	Email       string         `json:"email" validate:"required,notblank,emailshape"`
	DateOfBirth time.Time      `json:"dateOfBirth" validate:"required,pastdate,adult"`
	Address     AddressPayload `json:"address"`
	PhoneNumber string         `json:"phoneNumber" validate:"required,notblank"`
	Password    string         `json:"password" validate:"required,min=10"`
}

// UpdatePatient is a partial patch; absent fields stay untouched. The merged
// record is re-validated before persisting.
type UpdatePatient struct {
	FirstName   *string         `json:"firstName" validate:"omitempty,notblank"`
	LastName    *string         `json:"lastName" validate:"omitempty,notblank"`
	Email       *string         `json:"email" validate:"omitempty,notblank,emailshape"`
	DateOfBirth *time.Time      `json:"dateOfBirth" validate:"omitempty,pastdate,adult"`
	Address     *AddressPayload `json:"address"`
	PhoneNumber *string         `json:"phoneNumber" validate:"omitempty,notblank"`
	Password    *string         `json:"password" validate:"omitempty,min=10"`
}

type LoginPatient struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
