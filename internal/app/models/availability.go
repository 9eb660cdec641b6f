package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Availability is a bookable appointment window. Start and end times are
// free-text, not parsed into structured time. Booking creation does not
// transition IsBooked; callers flip it explicitly.
type Availability struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Date      time.Time          `bson:"date" json:"date" validate:"required"`
	StartTime string             `bson:"startTime" json:"startTime" validate:"required,notblank"`
	EndTime   string             `bson:"endTime" json:"endTime" validate:"required,notblank"`
	IsBooked  bool               `bson:"isBooked" json:"isBooked"`
}
