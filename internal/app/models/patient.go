package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is embedded in Patient and MedicalCentre documents.
type Address struct {
	Street string `bson:"street" json:"street" validate:"required,notblank"`
	City   string `bson:"city" json:"city" validate:"required,notblank"`
}

// Patient is the credential-bearing account record. Password holds only the
// bcrypt hash and never serializes to JSON.
type Patient struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstName   string             `bson:"firstName" json:"firstName" validate:"required,notblank"`
	LastName    string             `bson:"lastName" json:"lastName" validate:"required,notblank"`
	Email       string             `bson:"email" json:"email" validate:"required,notblank,emailshape"`
	DateOfBirth time.Time          `bson:"dateOfBirth" json:"dateOfBirth" validate:"required,pastdate,adult"`
	Address     Address            `bson:"address" json:"address"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber" validate:"required,notblank"`
	Password    string             `bson:"password" json:"-"`
}
