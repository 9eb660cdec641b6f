package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Specialty struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SpecialtyName string             `bson:"specialtyName" json:"specialtyName" validate:"required,notblank"`
	Description   string             `bson:"description" json:"description" validate:"required,notblank"`
}
