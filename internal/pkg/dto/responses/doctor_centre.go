package responses

type DoctorCentre struct {
	ID              string            `json:"_id"`
	DoctorID        *DoctorRef        `json:"doctorId"`
	MedicalCentreID *MedicalCentreRef `json:"medicalCentreId"`
}
