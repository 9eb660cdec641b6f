package utils

import (
	"bookadoc-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectID classifies a syntactically malformed identifier before any
// repository call, so cast failures map to 400 rather than 404.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, exceptions.ErrInvalidID(err)
	}
	return objectID, nil
}
