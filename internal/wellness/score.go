package wellness

import (
	"fmt"
	"math"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
)

// Focus areas reported when a category scores negatively.
const (
	FocusWorkouts     = "Workouts"
	FocusNutrition    = "Nutrition"
	FocusGoals        = "Goals"
	FocusMentalHealth = "Mental Health"
)

// Scoring thresholds.
const (
	// WorkoutAverageDays is the fixed divisor for average daily minutes,
	// independent of how many days actually hold data.
	WorkoutAverageDays     = 7
	MinAvgWorkoutMinutes   = 30
	MinBalancedAvgCalories = 1800
	MaxBalancedAvgCalories = 2300
)

// Insights groups one insight line per category.
type Insights struct {
	Workouts []string `json:"workouts"`
	Foods    []string `json:"foods"`
	Goals    []string `json:"goals"`
	Mental   []string `json:"mental"`
}

// Evaluated holds the per-entry annotations of a report.
type Evaluated struct {
	Workouts []ClassifiedWorkout `json:"workouts"`
	Foods    []ClassifiedFood    `json:"foods"`
	Goals    []EvaluatedGoal     `json:"goals"`
	Mental   []ClassifiedMood    `json:"mental"`
}

// Report is the wellness history view.
type Report struct {
	Status     string    `json:"status"`
	Score      int       `json:"score"`
	FocusAreas []string  `json:"focusAreas"`
	Insights   Insights  `json:"insights"`
	Evaluated  Evaluated `json:"evaluated"`
}

// ScoreWellness rates workouts, foods, goals and moods with -1, 0 or +1 each
// and turns the sum into an overall status. Goals are evaluated at now.
func ScoreWellness(workouts []models.Workout, foods []models.Food, goals []models.Goal, moods []models.MoodEntry, now time.Time) Report {
	evaluated := EvaluateGoals(goals, workouts, foods, now)

	r := Report{FocusAreas: []string{}}
	r.Score += r.scoreWorkouts(workouts)
	r.Score += r.scoreFoods(foods)
	r.Score += r.scoreGoals(evaluated)
	r.Score += r.scoreMoods(moods)
	r.Status = OverallStatus(r.Score)

	r.Evaluated.Goals = evaluated
	r.Evaluated.Workouts = make([]ClassifiedWorkout, 0, len(workouts))
	for _, w := range workouts {
		r.Evaluated.Workouts = append(r.Evaluated.Workouts, ClassifyWorkout(w))
	}
	r.Evaluated.Foods = make([]ClassifiedFood, 0, len(foods))
	for _, f := range foods {
		r.Evaluated.Foods = append(r.Evaluated.Foods, ClassifyFood(f))
	}
	r.Evaluated.Mental = make([]ClassifiedMood, 0, len(moods))
	for _, m := range moods {
		r.Evaluated.Mental = append(r.Evaluated.Mental, ClassifyMood(m))
	}
	return r
}

// OverallStatus maps a summed score to its label.
func OverallStatus(score int) string {
	switch {
	case score >= 3:
		return StatusHealthy
	case score >= 1:
		return StatusAverage
	default:
		return StatusNeedsImprovement
	}
}

func (r *Report) scoreWorkouts(workouts []models.Workout) int {
	var total float64
	for _, w := range workouts {
		total += w.Duration
	}
	avg := total / WorkoutAverageDays
	if avg < MinAvgWorkoutMinutes {
		r.Insights.Workouts = append(r.Insights.Workouts, fmt.Sprintf("Average workout per day is low: %d mins.", int(math.Round(avg))))
		r.FocusAreas = append(r.FocusAreas, FocusWorkouts)
		return -1
	}
	r.Insights.Workouts = append(r.Insights.Workouts, "Good workout consistency!")
	return 1
}

func (r *Report) scoreFoods(foods []models.Food) int {
	var avg float64
	if len(foods) > 0 {
		var total float64
		for _, f := range foods {
			total += f.Calories
		}
		avg = total / float64(len(foods))
	}
	switch {
	case avg > MaxBalancedAvgCalories:
		r.Insights.Foods = append(r.Insights.Foods, "Your average calories are too high.")
		r.FocusAreas = append(r.FocusAreas, FocusNutrition)
		return -1
	case avg > 0 && avg < MinBalancedAvgCalories:
		r.Insights.Foods = append(r.Insights.Foods, "Your average calories are low.")
		r.FocusAreas = append(r.FocusAreas, FocusNutrition)
		return -1
	case avg > 0:
		r.Insights.Foods = append(r.Insights.Foods, "Calorie intake balanced.")
		return 1
	default:
		r.Insights.Foods = append(r.Insights.Foods, "No meals logged yet.")
		return 0
	}
}

func (r *Report) scoreGoals(goals []EvaluatedGoal) int {
	if len(goals) == 0 {
		r.Insights.Goals = append(r.Insights.Goals, "No goals set yet.")
		return 0
	}
	completed := 0
	for _, g := range goals {
		if g.Goal.Completed {
			completed++
		}
	}
	if completed*2 > len(goals) {
		r.Insights.Goals = append(r.Insights.Goals, "You're achieving most of your goals.")
		return 1
	}
	r.Insights.Goals = append(r.Insights.Goals, "You need to complete more goals.")
	r.FocusAreas = append(r.FocusAreas, FocusGoals)
	return -1
}

func (r *Report) scoreMoods(moods []models.MoodEntry) int {
	if len(moods) == 0 {
		r.Insights.Mental = append(r.Insights.Mental, "No mental health logs yet.")
		return 0
	}
	positive := 0
	for _, m := range moods {
		if IsPositiveMood(m.Mood) {
			positive++
		}
	}
	if positive*2 < len(moods) {
		r.Insights.Mental = append(r.Insights.Mental, "Negative moods outweigh positives.")
		r.FocusAreas = append(r.FocusAreas, FocusMentalHealth)
		return -1
	}
	r.Insights.Mental = append(r.Insights.Mental, "Mostly positive moods.")
	return 1
}
