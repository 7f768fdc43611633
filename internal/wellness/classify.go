package wellness

import (
	"strings"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
)

// Status labels shared by entries, goals and the overall report.
const (
	StatusHealthy          = "Healthy"
	StatusAverage          = "Average"
	StatusNeedsImprovement = "Needs Improvement"
	StatusPositive         = "Positive"
)

// ClassifiedWorkout annotates a workout. The label does not feed the score.
type ClassifiedWorkout struct {
	models.Workout
	Status string `json:"status"`
	Note   string `json:"note"`
}

type ClassifiedFood struct {
	models.Food
	Status string `json:"status"`
	Note   string `json:"note"`
}

type ClassifiedMood struct {
	models.MoodEntry
	Status string `json:"status"`
	Note   string `json:"note"`
}

func ClassifyWorkout(w models.Workout) ClassifiedWorkout {
	switch {
	case w.Duration >= 30:
		return ClassifiedWorkout{w, StatusHealthy, "Great workout!"}
	case w.Duration >= 15:
		return ClassifiedWorkout{w, StatusAverage, "Try extending workouts."}
	default:
		return ClassifiedWorkout{w, StatusNeedsImprovement, "Workout too short. Aim 30+ mins."}
	}
}

func ClassifyFood(f models.Food) ClassifiedFood {
	switch {
	case f.Calories > 800:
		return ClassifiedFood{f, StatusNeedsImprovement, "High calories. Try lighter meals."}
	case f.Protein < 10:
		return ClassifiedFood{f, StatusAverage, "Protein low. Add eggs, beans, etc."}
	default:
		return ClassifiedFood{f, StatusHealthy, "Balanced meal."}
	}
}

func ClassifyMood(m models.MoodEntry) ClassifiedMood {
	if IsPositiveMood(m.Mood) {
		return ClassifiedMood{m, StatusPositive, "Good mood balance."}
	}
	return ClassifiedMood{m, StatusNeedsImprovement, "Negative mood. Try meditation or journaling."}
}

// IsPositiveMood reports whether mood is "happy" or "neutral", ignoring case.
func IsPositiveMood(mood string) bool {
	switch strings.ToLower(strings.TrimSpace(mood)) {
	case "happy", "neutral":
		return true
	}
	return false
}
