package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Contacts struct {
	Email string `bson:"email" json:"email" validate:"required,notblank,emailshape"`
	Phone string `bson:"phone" json:"phone" validate:"required,notblank"`
}

type MedicalCentre struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	MedicalCentreName string             `bson:"medicalCentreName" json:"medicalCentreName" validate:"required,notblank"`
	OperatingHours    string             `bson:"operatingHours" json:"operatingHours" validate:"required,notblank"`
	Address           Address            `bson:"address" json:"address"`
	Contacts          Contacts           `bson:"contacts" json:"contacts"`
}
