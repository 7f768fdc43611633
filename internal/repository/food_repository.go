package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FoodRepository stores logged meals.
type FoodRepository struct {
	collection *mongo.Collection
}

func NewFoodRepository(db *mongo.Database) *FoodRepository {
	return &FoodRepository{
		collection: db.Collection("foods"),
	}
}

func (r *FoodRepository) CreateFood(ctx context.Context, f *models.Food) (*models.Food, error) {
	f.CreatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, f)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", f.UserID.Hex()).Error("Failed to insert food")
		return nil, fmt.Errorf("failed to insert food: %w", err)
	}
	f.ID = insertedID(res)

	logger.Log.WithField("food_id", f.ID.Hex()).Info("Food entry created successfully")
	return f, nil
}

// ListFoods returns the user's food entries dated on or after since, newest
// first. A zero since returns all of them.
func (r *FoodRepository) ListFoods(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]models.Food, error) {
	foods := []models.Food{}
	if err := findByUser(ctx, r.collection, userID, since, &foods); err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Error("Failed to fetch foods")
		return nil, fmt.Errorf("failed to fetch foods: %w", err)
	}
	return foods, nil
}

func (r *FoodRepository) DeleteFood(ctx context.Context, id, userID primitive.ObjectID) error {
	if err := deleteOwned(ctx, r.collection, id, userID); err != nil {
		logger.Log.WithError(err).WithField("food_id", id.Hex()).Warn("Failed to delete food entry")
		return err
	}
	logger.Log.WithField("food_id", id.Hex()).Info("Food entry deleted successfully")
	return nil
}
