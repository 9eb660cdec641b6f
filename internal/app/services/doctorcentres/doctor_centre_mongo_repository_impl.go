package doctorcentres

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

type DoctorCentreMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorCentreMongoRepository(db *mongo.Client, dbName string) contracts.DoctorCentreRepository {
	return &DoctorCentreMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctorCentres),
	}
}

// FindAll returns pairs in natural order; this listing has never been sorted.
func (r *DoctorCentreMongoRepository) FindAll(ctx context.Context) ([]models.DoctorCentre, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	doctorCentres := make([]models.DoctorCentre, 0)
	if err := cursor.All(ctx, &doctorCentres); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctorCentres, nil
}

func (r *DoctorCentreMongoRepository) FindByID(ctx context.Context, doctorCentreID primitive.ObjectID) (*models.DoctorCentre, error) {
	var doctorCentre models.DoctorCentre
	err := r.Collection.FindOne(ctx, bson.M{"_id": doctorCentreID}).Decode(&doctorCentre)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctorCentre, nil
}

func (r *DoctorCentreMongoRepository) Create(ctx context.Context, doctorCentre *models.DoctorCentre) (*models.DoctorCentre, error) {
	result, err := r.Collection.InsertOne(ctx, doctorCentre)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	doctorCentre.ID = result.InsertedID.(primitive.ObjectID)
	return doctorCentre, nil
}

func (r *DoctorCentreMongoRepository) Update(ctx context.Context, doctorCentre *models.DoctorCentre) error {
	filter := bson.M{"_id": doctorCentre.ID}

	_, err := r.Collection.ReplaceOne(ctx, filter, doctorCentre, options.Replace().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorCentreMongoRepository) Delete(ctx context.Context, doctorCentreID primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": doctorCentreID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
