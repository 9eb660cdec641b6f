package database

import (
	"context"
	"fmt"
	"log"

	"bookadoc-service/internal/app/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoDB connects and pings the database. Startup without a reachable
// store is a process-fatal condition.
func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	connectionString := driverConfig.MongoDB.URI
	if connectionString == "" {
		if driverConfig.MongoDB.Username != "" {
			connectionString = fmt.Sprintf(
				"mongodb://%s:%s@%s:%s",
				driverConfig.MongoDB.Username,
				driverConfig.MongoDB.Password,
				driverConfig.MongoDB.Host,
				driverConfig.MongoDB.Port,
			)
		} else {
			connectionString = fmt.Sprintf(
				"mongodb://%s:%s",
				driverConfig.MongoDB.Host,
				driverConfig.MongoDB.Port,
			)
		}
	}

	dbOptions := options.Client().ApplyURI(connectionString)
	client, err := mongo.Connect(context.TODO(), dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(context.TODO(), nil)
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client
}
