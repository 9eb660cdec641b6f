package main

import (
	"context"
	"log"
	"time"

	"bookadoc-service/internal/app/config"
	"bookadoc-service/internal/app/drivers/database"
	"bookadoc-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the unique indexes the duplicate checks rely on. Safe to run
// repeatedly; CreateOne on an existing identical index is a no-op.
func main() {
	driverConfig := config.NewDriverConfig()

	client := database.NewMongoDB(driverConfig)
	db := client.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	indexes := []struct {
		collection string
		keys       bson.D
		name       string
	}{
		{constvars.MongoCollectionPatients, bson.D{{Key: "email", Value: 1}}, "uniq_email"},
		{constvars.MongoCollectionSpecialties, bson.D{{Key: "specialtyName", Value: 1}}, "uniq_specialty_name"},
		{constvars.MongoCollectionMedicalCentres, bson.D{{Key: "contacts.email", Value: 1}}, "uniq_contact_email"},
	}

	for _, index := range indexes {
		model := mongo.IndexModel{
			Keys:    index.keys,
			Options: options.Index().SetUnique(true).SetName(index.name),
		}
		name, err := db.Collection(index.collection).Indexes().CreateOne(ctx, model)
		if err != nil {
			log.Fatalf("Failed to create index %s on %s: %s", index.name, index.collection, err.Error())
		}
		log.Printf("Created index %s on %s", name, index.collection)
	}

	if err := client.Disconnect(ctx); err != nil {
		log.Fatalf("Failed to disconnect from mongo database: %s", err.Error())
	}
}
