package bookings

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

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

func (r *BookingMongoRepository) FindAll(ctx context.Context) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	bookings := make([]models.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (r *BookingMongoRepository) FindByID(ctx context.Context, bookingID primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking
	err := r.Collection.FindOne(ctx, bson.M{"_id": bookingID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (r *BookingMongoRepository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	result, err := r.Collection.InsertOne(ctx, booking)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	booking.ID = result.InsertedID.(primitive.ObjectID)
	return booking, nil
}

func (r *BookingMongoRepository) Update(ctx context.Context, booking *models.Booking) error {
	filter := bson.M{"_id": booking.ID}

	_, err := r.Collection.ReplaceOne(ctx, filter, booking, options.Replace().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *BookingMongoRepository) Delete(ctx context.Context, bookingID primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": bookingID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
