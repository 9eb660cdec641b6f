package specialties

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

type SpecialtyMongoRepository struct {
	Collection *mongo.Collection
}

func NewSpecialtyMongoRepository(db *mongo.Client, dbName string) contracts.SpecialtyRepository {
	return &SpecialtyMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSpecialties),
	}
}

func (r *SpecialtyMongoRepository) FindAll(ctx context.Context) ([]models.Specialty, error) {
	opts := options.Find().SetSort(bson.D{{Key: "specialtyName", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	specialties := make([]models.Specialty, 0)
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return specialties, nil
}

func (r *SpecialtyMongoRepository) FindByID(ctx context.Context, specialtyID primitive.ObjectID) (*models.Specialty, error) {
	var specialty models.Specialty
	err := r.Collection.FindOne(ctx, bson.M{"_id": specialtyID}).Decode(&specialty)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &specialty, nil
}

func (r *SpecialtyMongoRepository) FindByIDs(ctx context.Context, specialtyIDs []primitive.ObjectID) ([]models.Specialty, error) {
	if len(specialtyIDs) == 0 {
		return []models.Specialty{}, nil
	}

	cursor, err := r.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": specialtyIDs}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	specialties := make([]models.Specialty, 0)
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return specialties, nil
}

func (r *SpecialtyMongoRepository) FindByName(ctx context.Context, specialtyName string) (*models.Specialty, error) {
	var specialty models.Specialty
	err := r.Collection.FindOne(ctx, bson.M{"specialtyName": specialtyName}).Decode(&specialty)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &specialty, nil
}

func (r *SpecialtyMongoRepository) Create(ctx context.Context, specialty *models.Specialty) (*models.Specialty, error) {
	result, err := r.Collection.InsertOne(ctx, specialty)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrDuplicateKey("specialtyName")
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	specialty.ID = result.InsertedID.(primitive.ObjectID)
	return specialty, nil
}

func (r *SpecialtyMongoRepository) Update(ctx context.Context, specialty *models.Specialty) error {
	filter := bson.M{"_id": specialty.ID}

	_, err := r.Collection.ReplaceOne(ctx, filter, specialty, options.Replace().SetUpsert(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrDuplicateKey("specialtyName")
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *SpecialtyMongoRepository) Delete(ctx context.Context, specialtyID primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": specialtyID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
