package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/internal/wellness"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReminderService builds the reminder feed and tracks what the user has
// already seen.
type ReminderService struct {
	goals    *GoalService
	workouts WorkoutStore
	foods    FoodStore
	moods    MoodStore
	acks     AckStore
	now      func() time.Time
}

func NewReminderService(goals *GoalService, workouts WorkoutStore, foods FoodStore, moods MoodStore, acks AckStore, loc *time.Location) *ReminderService {
	return &ReminderService{
		goals:    goals,
		workouts: workouts,
		foods:    foods,
		moods:    moods,
		acks:     acks,
		now:      clockIn(loc),
	}
}

// AllReminders returns every reminder that applies right now. Goal
// completion is evaluated but not written back.
func (s *ReminderService) AllReminders(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	now := s.now()
	today := wellness.StartOfDay(now)

	workouts, err := s.workouts.ListWorkouts(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get workouts: %w", err)
	}
	foods, err := s.foods.ListFoods(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get foods: %w", err)
	}
	moods, err := s.moods.ListMoods(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to get moods: %w", err)
	}
	goals, err := s.goals.EvaluateGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	return wellness.GenerateReminders(wellness.SelectToday(workouts, foods, moods, now), goals), nil
}

// GetReminders returns the feed: reminders not yet acknowledged, all
// current reminders and whether anything is new.
func (s *ReminderService) GetReminders(ctx context.Context, userID primitive.ObjectID) (*models.ReminderFeed, error) {
	all, err := s.AllReminders(ctx, userID)
	if err != nil {
		return nil, err
	}
	acked, err := s.acks.GetAcknowledged(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get acknowledged reminders: %w", err)
	}

	unseen := wellness.Unseen(all, acked)
	return &models.ReminderFeed{
		Reminders:    unseen,
		AllReminders: all,
		HasNew:       len(unseen) > 0,
	}, nil
}

// AcknowledgeReminders replaces the user's acknowledged set with reminders.
// An empty list clears it.
func (s *ReminderService) AcknowledgeReminders(ctx context.Context, userID primitive.ObjectID, reminders []string) error {
	if reminders == nil {
		reminders = []string{}
	}
	if err := s.acks.SetAcknowledged(ctx, userID, reminders); err != nil {
		return fmt.Errorf("failed to acknowledge reminders: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id": userID.Hex(),
		"count":   len(reminders),
	}).Info("Reminders marked as viewed")
	return nil
}
