package wellness

import (
	"fmt"
	"strings"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
)

// Reminder texts. Clients match on them when acknowledging, so they are
// part of the API.
const (
	ReminderLogMeals     = "Don't forget to log your meals today!"
	ReminderNoWorkout    = "You haven't logged any workouts today. Stay active!"
	ReminderLightWorkout = "Try to complete at least 30 mins of workout or burn 300 calories today."
	ReminderLogMood      = "Remember to log your mood today."
	ReminderSadMood      = "You seem sad today. Consider meditation or journaling."
)

// Daily workout thresholds below which a light-workout reminder is raised.
const (
	MinDailyWorkoutMinutes  = 30
	MinDailyWorkoutCalories = 300
)

// TodayLogs holds the entries that occurred since local midnight.
type TodayLogs struct {
	Workouts []models.Workout
	Foods    []models.Food
	Moods    []models.MoodEntry
}

// SelectToday keeps the entries dated on or after the start of now's day.
func SelectToday(workouts []models.Workout, foods []models.Food, moods []models.MoodEntry, now time.Time) TodayLogs {
	start := StartOfDay(now)
	var t TodayLogs
	for _, w := range workouts {
		if !w.Date.Before(start) {
			t.Workouts = append(t.Workouts, w)
		}
	}
	for _, f := range foods {
		if !f.Date.Before(start) {
			t.Foods = append(t.Foods, f)
		}
	}
	for _, m := range moods {
		if !m.Date.Before(start) {
			t.Moods = append(t.Moods, m)
		}
	}
	return t
}

// GenerateReminders derives the reminder list from today's logs and the
// freshly evaluated goals. The order is fixed: meals, workouts, mood, then
// one line per incomplete goal in goal order.
func GenerateReminders(today TodayLogs, goals []EvaluatedGoal) []string {
	reminders := []string{}

	if len(today.Foods) == 0 {
		reminders = append(reminders, ReminderLogMeals)
	}

	if len(today.Workouts) == 0 {
		reminders = append(reminders, ReminderNoWorkout)
	} else {
		var calories, minutes float64
		for _, w := range today.Workouts {
			calories += w.Calories
			minutes += w.Duration
		}
		if calories < MinDailyWorkoutCalories || minutes < MinDailyWorkoutMinutes {
			reminders = append(reminders, ReminderLightWorkout)
		}
	}

	if len(today.Moods) == 0 {
		reminders = append(reminders, ReminderLogMood)
	} else {
		for _, m := range today.Moods {
			if strings.EqualFold(strings.TrimSpace(m.Mood), "sad") {
				reminders = append(reminders, ReminderSadMood)
				break
			}
		}
	}

	for _, g := range goals {
		if !g.Goal.Completed {
			reminders = append(reminders, GoalReminder(g.Goal))
		}
	}
	return reminders
}

// GoalReminder is the reminder line for an incomplete goal.
func GoalReminder(g models.Goal) string {
	return fmt.Sprintf("%s Goal (%s) is not completed yet.", g.Type, g.Category)
}

// Unseen returns the reminders in all that are not in acknowledged,
// keeping the order of all.
func Unseen(all, acknowledged []string) []string {
	seen := make(map[string]struct{}, len(acknowledged))
	for _, r := range acknowledged {
		seen[r] = struct{}{}
	}
	unseen := []string{}
	for _, r := range all {
		if _, ok := seen[r]; !ok {
			unseen = append(unseen, r)
		}
	}
	return unseen
}
