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

// WorkoutRepository stores logged workouts.
type WorkoutRepository struct {
	collection *mongo.Collection
}

func NewWorkoutRepository(db *mongo.Database) *WorkoutRepository {
	return &WorkoutRepository{
		collection: db.Collection("workouts"),
	}
}

func (r *WorkoutRepository) CreateWorkout(ctx context.Context, w *models.Workout) (*models.Workout, error) {
	w.CreatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, w)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", w.UserID.Hex()).Error("Failed to insert workout")
		return nil, fmt.Errorf("failed to insert workout: %w", err)
	}
	w.ID = insertedID(res)

	logger.Log.WithField("workout_id", w.ID.Hex()).Info("Workout created successfully")
	return w, nil
}

// ListWorkouts returns the user's workouts dated on or after since, newest
// first. A zero since returns all of them.
func (r *WorkoutRepository) ListWorkouts(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]models.Workout, error) {
	workouts := []models.Workout{}
	if err := findByUser(ctx, r.collection, userID, since, &workouts); err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Error("Failed to fetch workouts")
		return nil, fmt.Errorf("failed to fetch workouts: %w", err)
	}
	return workouts, nil
}

func (r *WorkoutRepository) DeleteWorkout(ctx context.Context, id, userID primitive.ObjectID) error {
	if err := deleteOwned(ctx, r.collection, id, userID); err != nil {
		logger.Log.WithError(err).WithField("workout_id", id.Hex()).Warn("Failed to delete workout")
		return err
	}
	logger.Log.WithField("workout_id", id.Hex()).Info("Workout deleted successfully")
	return nil
}
