package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// DoctorCentre realizes the doctor/centre many-to-many as pair rows.
type DoctorCentre struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	DoctorID        primitive.ObjectID `bson:"doctorId" json:"doctorId" validate:"required"`
	MedicalCentreID primitive.ObjectID `bson:"medicalCentreId" json:"medicalCentreId" validate:"required"`
}
