package requests

import "time"

type CreateAvailability struct {
	Date      time.Time `json:"date" validate:"required"`
	StartTime string    `json:"startTime" validate:"required,notblank"`
	EndTime   string    `json:"endTime" validate:"required,notblank"`
	IsBooked  *bool     `json:"isBooked"`
}

type UpdateAvailability struct {
	Date      *time.Time `json:"date"`
	StartTime *string    `json:"startTime" validate:"omitempty,notblank"`
	EndTime   *string    `json:"endTime" validate:"omitempty,notblank"`
	IsBooked  *bool      `json:"isBooked"`
}
