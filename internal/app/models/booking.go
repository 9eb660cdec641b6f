package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking associates a patient with a doctor, centre and availability slot.
// Creation defaults Status to confirmed.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Status          string             `bson:"status" json:"status" validate:"required,oneof=confirmed completed cancelled"`
	PatientID       primitive.ObjectID `bson:"patientId" json:"patientId" validate:"required"`
	DoctorID        primitive.ObjectID `bson:"doctorId" json:"doctorId" validate:"required"`
	MedicalCentreID primitive.ObjectID `bson:"medicalCentreId" json:"medicalCentreId" validate:"required"`
	AvailabilityID  primitive.ObjectID `bson:"availabilityId" json:"availabilityId" validate:"required"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
