package responses

type Doctor struct {
	ID          string        `json:"_id"`
	DoctorName  string        `json:"doctorName"`
	SpecialtyID *SpecialtyRef `json:"specialtyId"`
}
