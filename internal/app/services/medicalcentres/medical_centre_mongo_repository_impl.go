package medicalcentres

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

type MedicalCentreMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicalCentreMongoRepository(db *mongo.Client, dbName string) contracts.MedicalCentreRepository {
	return &MedicalCentreMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicalCentres),
	}
}

func (r *MedicalCentreMongoRepository) FindAll(ctx context.Context) ([]models.MedicalCentre, error) {
	opts := options.Find().SetSort(bson.D{{Key: "medicalCentreName", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	medicalCentres := make([]models.MedicalCentre, 0)
	if err := cursor.All(ctx, &medicalCentres); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medicalCentres, nil
}

func (r *MedicalCentreMongoRepository) FindByID(ctx context.Context, medicalCentreID primitive.ObjectID) (*models.MedicalCentre, error) {
	var medicalCentre models.MedicalCentre
	err := r.Collection.FindOne(ctx, bson.M{"_id": medicalCentreID}).Decode(&medicalCentre)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &medicalCentre, nil
}

func (r *MedicalCentreMongoRepository) FindByIDs(ctx context.Context, medicalCentreIDs []primitive.ObjectID) ([]models.MedicalCentre, error) {
	if len(medicalCentreIDs) == 0 {
		return []models.MedicalCentre{}, nil
	}

	cursor, err := r.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": medicalCentreIDs}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	medicalCentres := make([]models.MedicalCentre, 0)
	if err := cursor.All(ctx, &medicalCentres); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medicalCentres, nil
}

func (r *MedicalCentreMongoRepository) FindByContactEmail(ctx context.Context, email string) (*models.MedicalCentre, error) {
	var medicalCentre models.MedicalCentre
	err := r.Collection.FindOne(ctx, bson.M{"contacts.email": email}).Decode(&medicalCentre)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &medicalCentre, nil
}

func (r *MedicalCentreMongoRepository) Create(ctx context.Context, medicalCentre *models.MedicalCentre) (*models.MedicalCentre, error) {
	result, err := r.Collection.InsertOne(ctx, medicalCentre)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrDuplicateKey("contacts.email")
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	medicalCentre.ID = result.InsertedID.(primitive.ObjectID)
	return medicalCentre, nil
}

func (r *MedicalCentreMongoRepository) Update(ctx context.Context, medicalCentre *models.MedicalCentre) error {
	filter := bson.M{"_id": medicalCentre.ID}

	_, err := r.Collection.ReplaceOne(ctx, filter, medicalCentre, options.Replace().SetUpsert(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrDuplicateKey("contacts.email")
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *MedicalCentreMongoRepository) Delete(ctx context.Context, medicalCentreID primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": medicalCentreID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
