package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor references at most one Specialty. The reference is optional in the
// schema even though the create route requires it.
type Doctor struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	DoctorName  string              `bson:"doctorName" json:"doctorName" validate:"required,notblank"`
	SpecialtyID *primitive.ObjectID `bson:"specialtyId,omitempty" json:"specialtyId,omitempty"`
}
