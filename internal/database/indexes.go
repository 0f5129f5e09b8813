package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the application relies on. Unique
// identity indexes surface duplicate inserts as duplicate key errors;
// the rest back team-scoped, newest-first reads.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "teamId", Value: 1}},
		},
	}
	if _, err := db.Collection("users").Indexes().CreateMany(ctx, userIndexes); err != nil {
		return err
	}

	logIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "teamId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "createdById", Value: 1}},
		},
	}
	if _, err := db.Collection("waste_logs").Indexes().CreateMany(ctx, logIndexes); err != nil {
		return err
	}

	reportIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "teamId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
	}
	if _, err := db.Collection("reports").Indexes().CreateMany(ctx, reportIndexes); err != nil {
		return err
	}

	return nil
}
