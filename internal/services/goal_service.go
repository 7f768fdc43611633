package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/internal/wellness"
	"github.com/Dias221467/Wellness_Tracker/pkg/logger"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GoalService encapsulates the business logic for goals.
type GoalService struct {
	repo     GoalStore
	workouts WorkoutStore
	foods    FoodStore
	now      func() time.Time
}

// NewGoalService creates a new instance of GoalService. Periods are
// resolved in loc.
func NewGoalService(repo GoalStore, workouts WorkoutStore, foods FoodStore, loc *time.Location) *GoalService {
	return &GoalService{
		repo:     repo,
		workouts: workouts,
		foods:    foods,
		now:      clockIn(loc),
	}
}

// CreateGoal validates and stores a goal. Completion always starts false.
func (s *GoalService) CreateGoal(ctx context.Context, userID primitive.ObjectID, goal *models.Goal) (*models.Goal, error) {
	tf := wellness.ParseTimeframe(goal.Type)
	goal.Category = strings.TrimSpace(goal.Category)
	if tf == wellness.TimeframeUnknown || goal.Category == "" {
		logger.Log.WithField("user_id", userID.Hex()).Warn("Goal without valid type or category")
		return nil, fmt.Errorf("%w: type (Daily, Weekly or Monthly) and category are required", ErrValidation)
	}
	if goal.TargetCalories < 0 || goal.TargetWorkoutMinutes < 0 {
		return nil, fmt.Errorf("%w: targets cannot be negative", ErrValidation)
	}

	goal.ID = primitive.NilObjectID
	goal.UserID = userID
	goal.Type = tf.String()
	goal.Completed = false

	createdGoal, err := s.repo.CreateGoal(ctx, goal)
	if err != nil {
		logger.Log.WithError(err).Error("Service failed to create goal")
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	logger.Log.WithField("goal_id", createdGoal.ID.Hex()).Info("Goal created in service layer")
	return createdGoal, nil
}

// EvaluateGoals recomputes completion for all of the user's goals without
// persisting anything.
func (s *GoalService) EvaluateGoals(ctx context.Context, userID primitive.ObjectID) ([]wellness.EvaluatedGoal, error) {
	now := s.now()

	goals, err := s.repo.GetGoalsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}
	if len(goals) == 0 {
		return []wellness.EvaluatedGoal{}, nil
	}

	since := earliestPeriodStart(goals, now)
	workouts, err := s.workouts.ListWorkouts(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get workouts: %w", err)
	}
	foods, err := s.foods.ListFoods(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get foods: %w", err)
	}

	return wellness.EvaluateGoals(goals, workouts, foods, now), nil
}

// ListGoals evaluates the user's goals and persists every completion flag
// that changed before returning them. Any write failure fails the call.
func (s *GoalService) ListGoals(ctx context.Context, userID primitive.ObjectID) ([]wellness.EvaluatedGoal, error) {
	evaluated, err := s.EvaluateGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, g := range evaluated {
		if !g.Changed {
			continue
		}
		if err := s.repo.UpdateGoalCompletion(ctx, g.ID, g.Completed); err != nil {
			logger.Log.WithError(err).WithField("goal_id", g.ID.Hex()).Error("Failed to write back goal completion")
			return nil, fmt.Errorf("failed to update goal %s: %w", g.ID.Hex(), err)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"user_id": userID.Hex(),
		"count":   len(evaluated),
	}).Info("Goals evaluated")
	return evaluated, nil
}

// DeleteGoal removes one of the user's goals.
func (s *GoalService) DeleteGoal(ctx context.Context, userID, id primitive.ObjectID) error {
	if err := s.repo.DeleteGoal(ctx, id, userID); err != nil {
		return storeError(err, "delete goal")
	}
	return nil
}

// earliestPeriodStart is the oldest instant any of the goals looks back to.
func earliestPeriodStart(goals []models.Goal, now time.Time) time.Time {
	earliest := now
	for _, g := range goals {
		if start := wellness.PeriodStart(wellness.ParseTimeframe(g.Type), now); start.Before(earliest) {
			earliest = start
		}
	}
	return earliest
}

// clockIn returns a clock reporting the current time in loc.
func clockIn(loc *time.Location) func() time.Time {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}
