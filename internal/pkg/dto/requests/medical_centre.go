package requests

type ContactsPayload struct {
	Email string `json:"email" validate:"required,notblank,emailshape"`
	Phone string `json:"phone" validate:"required,notblank"`
}

type CreateMedicalCentre struct {
	MedicalCentreName string          `json:"medicalCentreName" validate:"required,notblank"`
	OperatingHours    string          `json:"operatingHours" validate:"required,notblank"`
	Address           AddressPayload  `json:"address"`
	Contacts          ContactsPayload `json:"contacts"`
}

type UpdateMedicalCentre struct {
	MedicalCentreName *string          `json:"medicalCentreName" validate:"omitempty,notblank"`
	OperatingHours    *string          `json:"operatingHours" validate:"omitempty,notblank"`
	Address           *AddressPayload  `json:"address"`
	Contacts          *ContactsPayload `json:"contacts"`
}
