package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/config"
	"github.com/Dias221467/Wellness_Tracker/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB opens the MongoDB connection, checks it and makes sure the
// indexes the repositories rely on exist.
func ConnectDB(cfg *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	db := client.Database(cfg.DBName)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	logger.Log.WithField("database", cfg.DBName).Info("Connected to MongoDB")
	return db, nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	byUserDate := mongo.IndexModel{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}}

	indexes := map[string][]mongo.IndexModel{
		"users": {{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		"workouts":    {byUserDate},
		"foods":       {byUserDate},
		"mental_logs": {byUserDate},
		"goals":       {{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: 1}}}},
		"notifications": {{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "type", Value: 1}, {Key: "created_at", Value: -1}},
		}},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %v", coll, err)
		}
	}
	return nil
}
