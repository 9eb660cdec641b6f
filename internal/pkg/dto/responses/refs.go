package responses

import "time"

// Reference projections carry only the documented display fields of the
// referenced entity, never the full record. A dangling reference serializes
// as null, matching the original join-on-read behaviour.

type PatientRef struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type DoctorRef struct {
	ID         string `json:"_id"`
	DoctorName string `json:"doctorName"`
}

type SpecialtyRef struct {
	ID            string `json:"_id"`
	SpecialtyName string `json:"specialtyName"`
}

type MedicalCentreRef struct {
	ID                string `json:"_id"`
	MedicalCentreName string `json:"medicalCentreName"`
}

type AvailabilityRef struct {
	ID        string    `json:"_id"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	IsBooked  *bool     `json:"isBooked,omitempty"`
}
