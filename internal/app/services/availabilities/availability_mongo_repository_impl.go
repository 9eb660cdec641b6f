package availabilities

import (
	"context"

	"bookadoc-service/internal/app/contracts"
	"bookadoc-service/internal/app/models"
	"bookadoc-service/internal/pkg/constvars"
	"bookadoc-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AvailabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewAvailabilityMongoRepository(db *mongo.Client, dbName string) contracts.AvailabilityRepository {
	return &AvailabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAvailabilities),
	}
}

func (r *AvailabilityMongoRepository) FindAll(ctx context.Context) ([]models.Availability, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	availabilities := make([]models.Availability, 0)
	if err := cursor.All(ctx, &availabilities); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return availabilities, nil
}

func (r *AvailabilityMongoRepository) FindByID(ctx context.Context, availabilityID primitive.ObjectID) (*models.Availability, error) {
	var availability models.Availability
	err := r.Collection.FindOne(ctx, bson.M{"_id": availabilityID}).Decode(&availability)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &availability, nil
}

func (r *AvailabilityMongoRepository) FindByIDs(ctx context.Context, availabilityIDs []primitive.ObjectID) ([]models.Availability, error) {
	if len(availabilityIDs) == 0 {
		return []models.Availability{}, nil
	}

	cursor, err := r.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": availabilityIDs}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	availabilities := make([]models.Availability, 0)
	if err := cursor.All(ctx, &availabilities); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return availabilities, nil
}

func (r *AvailabilityMongoRepository) Create(ctx context.Context, availability *models.Availability) (*models.Availability, error) {
	result, err := r.Collection.InsertOne(ctx, availability)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	availability.ID = result.InsertedID.(primitive.ObjectID)
	return availability, nil
}

func (r *AvailabilityMongoRepository) Update(ctx context.Context, availability *models.Availability) error {
	filter := bson.M{"_id": availability.ID}

	_, err := r.Collection.ReplaceOne(ctx, filter, availability, options.Replace().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AvailabilityMongoRepository) Delete(ctx context.Context, availabilityID primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": availabilityID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
