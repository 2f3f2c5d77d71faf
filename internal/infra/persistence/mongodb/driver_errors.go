package mongodb

import (
	"storefront/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Helper functions for MongoDB driver error checking

func isDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// parseObjectID converts an external hex token to the driver's id type. A
// token that is not a 24-character hex string fails with
// repository.ErrInvalidID before any round trip to the store.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrInvalidID
	}

	return oid, nil
}
