package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/internal/wellness"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WellnessService builds the history report and the dashboard from all of
// a user's logs.
type WellnessService struct {
	workouts WorkoutStore
	foods    FoodStore
	moods    MoodStore
	goals    GoalStore
	now      func() time.Time
}

func NewWellnessService(workouts WorkoutStore, foods FoodStore, moods MoodStore, goals GoalStore, loc *time.Location) *WellnessService {
	return &WellnessService{
		workouts: workouts,
		foods:    foods,
		moods:    moods,
		goals:    goals,
		now:      clockIn(loc),
	}
}

type userLogs struct {
	workouts []models.Workout
	foods    []models.Food
	moods    []models.MoodEntry
}

func (s *WellnessService) loadLogs(ctx context.Context, userID primitive.ObjectID) (*userLogs, error) {
	var l userLogs
	var err error
	if l.workouts, err = s.workouts.ListWorkouts(ctx, userID, time.Time{}); err != nil {
		return nil, fmt.Errorf("failed to get workouts: %w", err)
	}
	if l.foods, err = s.foods.ListFoods(ctx, userID, time.Time{}); err != nil {
		return nil, fmt.Errorf("failed to get foods: %w", err)
	}
	if l.moods, err = s.moods.ListMoods(ctx, userID, time.Time{}); err != nil {
		return nil, fmt.Errorf("failed to get moods: %w", err)
	}
	return &l, nil
}

// Report scores everything the user ever logged. Goals are evaluated at
// the current instant; stored completion flags are left alone.
func (s *WellnessService) Report(ctx context.Context, userID primitive.ObjectID) (*wellness.Report, error) {
	logs, err := s.loadLogs(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.goals.GetGoalsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}

	report := wellness.ScoreWellness(logs.workouts, logs.foods, goals, logs.moods, s.now())
	return &report, nil
}

func (s *WellnessService) Dashboard(ctx context.Context, userID primitive.ObjectID) (*wellness.Dashboard, error) {
	logs, err := s.loadLogs(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := wellness.BuildDashboard(logs.workouts, logs.foods, logs.moods, s.now())
	return &dashboard, nil
}
