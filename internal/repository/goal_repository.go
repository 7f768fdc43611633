package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GoalRepository struct handles database operations related to goals
type GoalRepository struct {
	collection *mongo.Collection
}

// NewGoalRepository creates a new instance of GoalRepository
func NewGoalRepository(db *mongo.Database) *GoalRepository {
	return &GoalRepository{
		collection: db.Collection("goals"),
	}
}

// CreateGoal creates a new goal in the database
func (r *GoalRepository) CreateGoal(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = goal.CreatedAt

	result, err := r.collection.InsertOne(ctx, goal)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to insert goal")
		return nil, fmt.Errorf("failed to insert goal: %w", err)
	}
	goal.ID = insertedID(result)

	logger.Log.WithField("goal_id", goal.ID.Hex()).Info("Goal created successfully")
	return goal, nil
}

// GetGoalsByUser returns the user's goals in creation order.
func (r *GoalRepository) GetGoalsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Goal, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Error("Failed to fetch goals")
		return nil, fmt.Errorf("failed to fetch goals: %w", err)
	}
	defer cursor.Close(ctx)

	goals := []models.Goal{}
	if err := cursor.All(ctx, &goals); err != nil {
		logger.Log.WithError(err).Error("Failed to decode goals")
		return nil, fmt.Errorf("failed to decode goals: %w", err)
	}
	return goals, nil
}

// UpdateGoalCompletion persists a recomputed completion flag. It touches
// nothing else on the document.
func (r *GoalRepository) UpdateGoalCompletion(ctx context.Context, id primitive.ObjectID, completed bool) error {
	update := bson.M{"$set": bson.M{"completed": completed, "updated_at": time.Now()}}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		logger.Log.WithError(err).WithField("goal_id", id.Hex()).Error("Failed to update goal completion")
		return fmt.Errorf("failed to update goal completion: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	logger.Log.WithFields(map[string]interface{}{
		"goal_id":   id.Hex(),
		"completed": completed,
	}).Info("Goal completion updated")
	return nil
}

// DeleteGoal deletes a goal owned by userID.
func (r *GoalRepository) DeleteGoal(ctx context.Context, id, userID primitive.ObjectID) error {
	if err := deleteOwned(ctx, r.collection, id, userID); err != nil {
		logger.Log.WithError(err).WithField("goal_id", id.Hex()).Warn("Failed to delete goal")
		return err
	}

	logger.Log.WithField("goal_id", id.Hex()).Info("Goal deleted successfully")
	return nil
}
