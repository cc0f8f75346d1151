package database

import (
	"context"
	"fmt"
	"time"

	"github.com/afiagithub/VitalCare-server/config"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names, as they exist in the deployed database.
const (
	CollectionUsers           = "users"
	CollectionTests           = "tests"
	CollectionDistricts       = "districts"
	CollectionUpazilas        = "upazilas"
	CollectionReservations    = "reservations"
	CollectionReports         = "reports"
	CollectionBanners         = "banners"
	CollectionRecommendations = "recommendation"
	CollectionDoctors         = "doctors"
	CollectionBlogs           = "blogs"
)

func NewMongoConnection(cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logrus.Info("Successfully connected to MongoDB")

	return client, client.Database(cfg.Database), nil
}

// EnsureIndexes creates the indexes the API relies on: unique identity
// indexes on users, and a date index backing the test listing's range
// filter and pagination.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection(CollectionUsers).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	testIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}
	if _, err := db.Collection(CollectionTests).Indexes().CreateMany(ctx, testIndexes); err != nil {
		return fmt.Errorf("failed to create test indexes: %w", err)
	}

	return nil
}
