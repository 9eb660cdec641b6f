package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DoctorAvailability struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	DoctorID       primitive.ObjectID `bson:"doctorId" json:"doctorId" validate:"required"`
	AvailabilityID primitive.ObjectID `bson:"availabilityId" json:"availabilityId" validate:"required"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
