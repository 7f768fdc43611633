package wellness_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/internal/wellness"
)

var now = time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return now.AddDate(0, 0, -n)
}

func workout(minutes, calories float64, at time.Time) models.Workout {
	return models.Workout{Type: "running", Duration: minutes, Calories: calories, Date: at}
}

func food(calories, protein float64, at time.Time) models.Food {
	return models.Food{Name: "meal", Calories: calories, Protein: protein, Date: at}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, wellness.KindWorkout, wellness.KindOf("Workout"))
	assert.Equal(t, wellness.KindWorkout, wellness.KindOf(" workout "))
	assert.Equal(t, wellness.KindFood, wellness.KindOf("FOOD"))
	assert.Equal(t, wellness.KindCustom, wellness.KindOf("sleep"))
	assert.Equal(t, wellness.KindCustom, wellness.KindOf(""))
}

func TestEvaluateGoals_WorkoutCompletesAtTarget(t *testing.T) {
	goal := models.Goal{Type: "Weekly", Category: "Workout", TargetWorkoutMinutes: 90}
	workouts := []models.Workout{
		workout(40, 200, daysAgo(1)),
		workout(50, 250, daysAgo(3)),
	}

	got := wellness.EvaluateGoals([]models.Goal{goal}, workouts, nil, now)

	require.Len(t, got, 1)
	assert.True(t, got[0].Goal.Completed)
	assert.True(t, got[0].Changed)
	require.NotNil(t, got[0].Progress)
	assert.Equal(t, 90.0, *got[0].Progress)
	assert.Equal(t, wellness.NoteAchieved, got[0].Note)
	assert.Equal(t, wellness.StatusPositive, got[0].Status)
}

func TestEvaluateGoals_DecreasingDurationFlipsCompletion(t *testing.T) {
	goal := models.Goal{Type: "Weekly", Category: "workout", TargetWorkoutMinutes: 90, Completed: true}
	workouts := []models.Workout{
		workout(40, 200, daysAgo(1)),
		workout(50, 250, daysAgo(3)),
	}

	first := wellness.EvaluateGoals([]models.Goal{goal}, workouts, nil, now)
	require.True(t, first[0].Goal.Completed)
	assert.False(t, first[0].Changed)

	workouts[1].Duration = 49
	second := wellness.EvaluateGoals([]models.Goal{first[0].Goal}, workouts, nil, now)

	assert.False(t, second[0].Goal.Completed)
	assert.True(t, second[0].Changed)
	assert.Equal(t, "Progress: 89/90 minutes", second[0].Note)
	assert.Equal(t, wellness.StatusNeedsImprovement, second[0].Status)
}

func TestEvaluateGoals_OnlyCountsLogsInsidePeriod(t *testing.T) {
	goals := []models.Goal{
		{Type: "Daily", Category: "Food", TargetCalories: 1000},
		{Type: "Weekly", Category: "Food", TargetCalories: 1000},
		{Type: "Monthly", Category: "Food", TargetCalories: 1000},
	}
	foods := []models.Food{
		food(600, 20, now.Add(-time.Hour)),
		food(500, 20, daysAgo(2)),
		food(900, 20, daysAgo(7)), // before both the weekly and monthly windows
	}

	got := wellness.EvaluateGoals(goals, nil, foods, now)

	require.Len(t, got, 3)
	assert.Equal(t, 600.0, *got[0].Progress)
	assert.False(t, got[0].Goal.Completed)
	assert.Equal(t, "Progress: 600/1000 calories", got[0].Note)
	assert.Equal(t, 1100.0, *got[1].Progress)
	assert.True(t, got[1].Goal.Completed)
	assert.Equal(t, 1100.0, *got[2].Progress)
	assert.True(t, got[2].Goal.Completed)
}

func TestEvaluateGoals_PeriodStartIsInclusive(t *testing.T) {
	goal := models.Goal{Type: "Daily", Category: "Workout", TargetWorkoutMinutes: 30}
	midnight := wellness.StartOfDay(now)

	got := wellness.EvaluateGoals([]models.Goal{goal}, []models.Workout{
		workout(30, 100, midnight),
		workout(60, 100, midnight.Add(-time.Nanosecond)),
	}, nil, now)

	assert.Equal(t, 30.0, *got[0].Progress)
	assert.True(t, got[0].Goal.Completed)
	assert.True(t, got[0].PeriodStart.Equal(midnight))
	assert.Equal(t, "today", got[0].Period)
}

func TestEvaluateGoals_UnknownTimeframeUsesWeeklyWindow(t *testing.T) {
	goal := models.Goal{Type: "Fortnightly", Category: "Workout", TargetWorkoutMinutes: 100}

	got := wellness.EvaluateGoals([]models.Goal{goal}, []models.Workout{
		workout(60, 0, daysAgo(6)),
		workout(60, 0, daysAgo(7)),
	}, nil, now)

	assert.Equal(t, 60.0, *got[0].Progress)
	assert.False(t, got[0].Goal.Completed)
}

func TestEvaluateGoals_NonNumericKeepsStoredFlag(t *testing.T) {
	goals := []models.Goal{
		{Type: "Daily", Category: "Sleep", Completed: true},
		{Type: "Daily", Category: "Sleep"},
		// no target
		{Type: "Daily", Category: "Workout"},
		// target does not match the kind
		{Type: "Daily", Category: "Food", TargetWorkoutMinutes: 30},
	}
	workouts := []models.Workout{workout(120, 900, now.Add(-time.Hour))}

	got := wellness.EvaluateGoals(goals, workouts, nil, now)

	require.Len(t, got, 4)
	assert.True(t, got[0].Goal.Completed)
	assert.Equal(t, wellness.NoteAchieved, got[0].Note)
	for _, g := range got[1:] {
		assert.False(t, g.Goal.Completed)
		assert.False(t, g.Changed)
		assert.False(t, g.Numeric())
		assert.Nil(t, g.Progress)
		assert.Equal(t, wellness.NoteNotCompleted, g.Note)
	}
}

func TestEvaluateGoals_SameCategoryGoalsAreIndependent(t *testing.T) {
	goals := []models.Goal{
		{Type: "Daily", Category: "Workout", TargetWorkoutMinutes: 30},
		{Type: "Daily", Category: "Workout", TargetWorkoutMinutes: 60},
	}
	workouts := []models.Workout{workout(45, 300, now.Add(-time.Hour))}

	got := wellness.EvaluateGoals(goals, workouts, nil, now)

	require.Len(t, got, 2)
	assert.True(t, got[0].Goal.Completed)
	assert.False(t, got[1].Goal.Completed)
	assert.Equal(t, 45.0, *got[0].Progress)
	assert.Equal(t, 45.0, *got[1].Progress)
}

func TestEvaluateGoals_Empty(t *testing.T) {
	got := wellness.EvaluateGoals(nil, nil, nil, now)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
