package services

import (
	"context"
	"testing"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestWorkoutService(t *testing.T) {
	logs := &fakeLogs{}
	s := NewWorkoutService(logs)
	s.now = fixedClock(testNow)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	_, err := s.CreateWorkout(ctx, userID, &models.Workout{Duration: 30})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = s.CreateWorkout(ctx, userID, &models.Workout{Type: "yoga"})
	assert.ErrorIs(t, err, ErrValidation)

	w, err := s.CreateWorkout(ctx, userID, &models.Workout{Type: " yoga ", Duration: 30, UserID: primitive.NewObjectID()})
	require.NoError(t, err)
	assert.Equal(t, "yoga", w.Type)
	assert.Equal(t, userID, w.UserID)
	assert.Equal(t, testNow, w.Date)

	list, err := s.ListWorkouts(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, s.DeleteWorkout(ctx, primitive.NewObjectID(), w.ID), ErrNotFound)
	require.NoError(t, s.DeleteWorkout(ctx, userID, w.ID))
	assert.Empty(t, logs.workouts)
}

func TestFoodService(t *testing.T) {
	logs := &fakeLogs{}
	s := NewFoodService(logs)
	s.now = fixedClock(testNow)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	_, err := s.CreateFood(ctx, userID, &models.Food{Name: "apple"})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = s.CreateFood(ctx, userID, &models.Food{Calories: 95})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = s.CreateFood(ctx, userID, &models.Food{Name: "apple", Calories: 95, Fat: -1})
	assert.ErrorIs(t, err, ErrValidation)

	date := testNow.AddDate(0, 0, -2)
	f, err := s.CreateFood(ctx, userID, &models.Food{Name: "apple", Calories: 95, Date: date})
	require.NoError(t, err)
	assert.Equal(t, date, f.Date)

	list, err := s.ListFoods(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.DeleteFood(ctx, userID, f.ID))
	assert.ErrorIs(t, s.DeleteFood(ctx, userID, f.ID), ErrNotFound)
}

func TestMoodService(t *testing.T) {
	logs := &fakeLogs{}
	s := NewMoodService(logs)
	s.now = fixedClock(testNow)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	_, err := s.CreateMood(ctx, userID, &models.MoodEntry{Mood: "   "})
	assert.ErrorIs(t, err, ErrValidation)

	m, err := s.CreateMood(ctx, userID, &models.MoodEntry{Mood: "Calm", Note: "after a walk"})
	require.NoError(t, err)
	assert.Equal(t, "Calm", m.Mood)
	assert.Equal(t, testNow, m.Date)

	logs.err = errStore
	_, err = s.ListMoods(ctx, userID)
	assert.ErrorIs(t, err, errStore)
}
