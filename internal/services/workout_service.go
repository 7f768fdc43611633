package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutService validates and stores workout logs.
type WorkoutService struct {
	repo WorkoutStore
	now  func() time.Time
}

func NewWorkoutService(repo WorkoutStore) *WorkoutService {
	return &WorkoutService{repo: repo, now: time.Now}
}

// CreateWorkout requires a type and a positive duration. A missing date
// means "now".
func (s *WorkoutService) CreateWorkout(ctx context.Context, userID primitive.ObjectID, w *models.Workout) (*models.Workout, error) {
	w.Type = strings.TrimSpace(w.Type)
	if w.Type == "" || w.Duration <= 0 {
		logger.Log.WithField("user_id", userID.Hex()).Warn("Workout without type or duration")
		return nil, fmt.Errorf("%w: type and duration required", ErrValidation)
	}
	if w.Calories < 0 || w.Distance < 0 {
		return nil, fmt.Errorf("%w: calories and distance cannot be negative", ErrValidation)
	}
	if w.Date.IsZero() {
		w.Date = s.now()
	}
	w.ID = primitive.NilObjectID
	w.UserID = userID

	created, err := s.repo.CreateWorkout(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}
	return created, nil
}

func (s *WorkoutService) ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]models.Workout, error) {
	workouts, err := s.repo.ListWorkouts(ctx, userID, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return workouts, nil
}

// DeleteWorkout removes one of the user's workouts. Workouts of other
// users are reported as not found.
func (s *WorkoutService) DeleteWorkout(ctx context.Context, userID, id primitive.ObjectID) error {
	if err := s.repo.DeleteWorkout(ctx, id, userID); err != nil {
		return storeError(err, "delete workout")
	}
	return nil
}
