package responses

import "time"

type DoctorAvailability struct {
	ID             string           `json:"_id"`
	DoctorID       *DoctorRef       `json:"doctorId"`
	AvailabilityID *AvailabilityRef `json:"availabilityId"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}
