package doctoravailabilities

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

type DoctorAvailabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorAvailabilityMongoRepository(db *mongo.Client, dbName string) contracts.DoctorAvailabilityRepository {
	return &DoctorAvailabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctorAvailabilities),
	}
}

func (r *DoctorAvailabilityMongoRepository) FindAll(ctx context.Context) ([]models.DoctorAvailability, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	links := make([]models.DoctorAvailability, 0)
	if err := cursor.All(ctx, &links); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return links, nil
}

func (r *DoctorAvailabilityMongoRepository) FindByID(ctx context.Context, doctorAvailabilityID primitive.ObjectID) (*models.DoctorAvailability, error) {
	var link models.DoctorAvailability
	err := r.Collection.FindOne(ctx, bson.M{"_id": doctorAvailabilityID}).Decode(&link)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &link, nil
}

func (r *DoctorAvailabilityMongoRepository) FindByDoctorID(ctx context.Context, doctorID primitive.ObjectID) ([]models.DoctorAvailability, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"doctorId": doctorID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	links := make([]models.DoctorAvailability, 0)
	if err := cursor.All(ctx, &links); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return links, nil
}

func (r *DoctorAvailabilityMongoRepository) Create(ctx context.Context, link *models.DoctorAvailability) (*models.DoctorAvailability, error) {
	result, err := r.Collection.InsertOne(ctx, link)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	link.ID = result.InsertedID.(primitive.ObjectID)
	return link, nil
}

func (r *DoctorAvailabilityMongoRepository) Update(ctx context.Context, link *models.DoctorAvailability) error {
	filter := bson.M{"_id": link.ID}

	_, err := r.Collection.ReplaceOne(ctx, filter, link, options.Replace().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorAvailabilityMongoRepository) Delete(ctx context.Context, doctorAvailabilityID primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": doctorAvailabilityID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
