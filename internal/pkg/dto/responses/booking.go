package responses

import "time"

type Booking struct {
	ID              string            `json:"_id"`
	Status          string            `json:"status"`
	PatientID       *PatientRef       `json:"patientId"`
	DoctorID        *DoctorRef        `json:"doctorId"`
	MedicalCentreID *MedicalCentreRef `json:"medicalCentreId"`
	AvailabilityID  *AvailabilityRef  `json:"availabilityId"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}
