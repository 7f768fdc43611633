package services

import (
	"context"
	"testing"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/internal/wellness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestReminderService(goals *fakeGoals, logs *fakeLogs, acks AckStore) *ReminderService {
	gs := newTestGoalService(goals, logs)
	s := NewReminderService(gs, logs, logs, logs, acks, time.UTC)
	s.now = fixedClock(testNow)
	return s
}

func TestGetRemindersScenario(t *testing.T) {
	userID := primitive.NewObjectID()
	goals := newFakeGoals(models.Goal{ID: primitive.NewObjectID(), UserID: userID, Type: "Daily", Category: "Workout", TargetWorkoutMinutes: 60})
	logs := &fakeLogs{
		workouts: []models.Workout{
			{UserID: userID, Duration: 45, Calories: 350, Date: testNow.Add(-2 * time.Hour)},
			{UserID: userID, Duration: 90, Calories: 900, Date: testNow.AddDate(0, 0, -1)},
		},
		foods: []models.Food{{UserID: userID, Calories: 700, Date: testNow.AddDate(0, 0, -1)}},
	}
	s := newTestReminderService(goals, logs, NewMemoryAckStore())

	feed, err := s.GetReminders(context.Background(), userID)

	require.NoError(t, err)
	want := []string{
		wellness.ReminderLogMeals,
		wellness.ReminderLogMood,
		"Daily Goal (Workout) is not completed yet.",
	}
	assert.Equal(t, want, feed.AllReminders)
	assert.Equal(t, want, feed.Reminders)
	assert.True(t, feed.HasNew)
	assert.Empty(t, goals.updates, "reminders never write goals back")
}

func TestAcknowledgeThenNewGoal(t *testing.T) {
	userID := primitive.NewObjectID()
	goals := newFakeGoals(models.Goal{ID: primitive.NewObjectID(), UserID: userID, Type: "Daily", Category: "Sleep"})
	logs := &fakeLogs{}
	s := newTestReminderService(goals, logs, NewMemoryAckStore())
	ctx := context.Background()

	feed, err := s.GetReminders(ctx, userID)
	require.NoError(t, err)
	require.NoError(t, s.AcknowledgeReminders(ctx, userID, feed.AllReminders))

	feed, err = s.GetReminders(ctx, userID)
	require.NoError(t, err)
	assert.False(t, feed.HasNew)
	assert.NotNil(t, feed.Reminders)
	assert.Empty(t, feed.Reminders)
	assert.Len(t, feed.AllReminders, 4)

	goals.goals = append(goals.goals, models.Goal{ID: primitive.NewObjectID(), UserID: userID, Type: "Weekly", Category: "Reading"})
	feed, err = s.GetReminders(ctx, userID)
	require.NoError(t, err)
	assert.True(t, feed.HasNew)
	assert.Equal(t, []string{"Weekly Goal (Reading) is not completed yet."}, feed.Reminders)
}

func TestAcknowledgeEmptyClears(t *testing.T) {
	userID := primitive.NewObjectID()
	acks := NewMemoryAckStore()
	s := newTestReminderService(newFakeGoals(), &fakeLogs{}, acks)
	ctx := context.Background()

	require.NoError(t, s.AcknowledgeReminders(ctx, userID, []string{wellness.ReminderLogMeals}))
	require.NoError(t, s.AcknowledgeReminders(ctx, userID, nil))

	acked, err := acks.GetAcknowledged(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, acked)

	feed, err := s.GetReminders(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, feed.AllReminders, feed.Reminders)
}

func TestGetRemindersPropagatesStoreErrors(t *testing.T) {
	s := newTestReminderService(newFakeGoals(), &fakeLogs{err: errStore}, NewMemoryAckStore())

	_, err := s.GetReminders(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, errStore)
}

func TestMemoryAckStoreIsolatesUsersAndCopies(t *testing.T) {
	acks := NewMemoryAckStore()
	ctx := context.Background()
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	in := []string{"x", "y"}
	require.NoError(t, acks.SetAcknowledged(ctx, a, in))
	in[0] = "mutated"

	got, err := acks.GetAcknowledged(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, got)

	got, err = acks.GetAcknowledged(ctx, b)
	require.NoError(t, err)
	assert.Empty(t, got)
}
