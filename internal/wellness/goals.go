package wellness

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
)

// Kind is the closed set of goal categories the evaluator understands.
type Kind int

const (
	KindCustom Kind = iota
	KindWorkout
	KindFood
)

// KindOf classifies free-text goal categories. Anything that is not
// "workout" or "food" (case-insensitive) is a custom goal.
func KindOf(category string) Kind {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "workout":
		return KindWorkout
	case "food":
		return KindFood
	default:
		return KindCustom
	}
}

func (k Kind) String() string {
	switch k {
	case KindWorkout:
		return "workout"
	case KindFood:
		return "food"
	default:
		return "custom"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Goal notes.
const (
	NoteAchieved     = "Goal achieved"
	NoteNotCompleted = "Not completed"
)

// EvaluatedGoal is a goal with its completion recomputed at a given instant.
// The embedded Goal carries the fresh Completed value.
type EvaluatedGoal struct {
	models.Goal
	Kind        Kind      `json:"kind"`
	Progress    *float64  `json:"progress"`
	Target      *float64  `json:"target"`
	Metric      string    `json:"metric,omitempty"`
	Note        string    `json:"note"`
	Status      string    `json:"status"`
	Period      string    `json:"timeframeLabel"`
	PeriodStart time.Time `json:"timeframeStart"`

	// Changed is true when Completed differs from the stored value.
	Changed bool `json:"-"`
}

// Numeric reports whether completion was decided by progress against a target.
func (e EvaluatedGoal) Numeric() bool {
	return e.Target != nil
}

// EvaluateGoals recomputes every goal's completion from the logs that fall
// inside the goal's own period. Goals are independent of each other and the
// result keeps the input order. Nothing is persisted.
func EvaluateGoals(goals []models.Goal, workouts []models.Workout, foods []models.Food, now time.Time) []EvaluatedGoal {
	out := make([]EvaluatedGoal, 0, len(goals))
	for _, g := range goals {
		out = append(out, evaluateGoal(g, workouts, foods, now))
	}
	return out
}

func evaluateGoal(g models.Goal, workouts []models.Workout, foods []models.Food, now time.Time) EvaluatedGoal {
	tf := ParseTimeframe(g.Type)
	start := PeriodStart(tf, now)
	stored := g.Completed

	ev := EvaluatedGoal{
		Goal:        g,
		Kind:        KindOf(g.Category),
		Period:      tf.Label(),
		PeriodStart: start,
	}

	var progress, target float64
	switch {
	case ev.Kind == KindWorkout && g.TargetWorkoutMinutes > 0:
		target = g.TargetWorkoutMinutes
		ev.Metric = "minutes"
		for _, w := range workouts {
			if !w.Date.Before(start) {
				progress += w.Duration
			}
		}
	case ev.Kind == KindFood && g.TargetCalories > 0:
		target = g.TargetCalories
		ev.Metric = "calories"
		for _, f := range foods {
			if !f.Date.Before(start) {
				progress += f.Calories
			}
		}
	default:
		// No numeric rule applies, the stored flag stands.
		if stored {
			ev.Note = NoteAchieved
		} else {
			ev.Note = NoteNotCompleted
		}
		ev.Status = goalStatus(stored)
		return ev
	}

	ev.Progress = &progress
	ev.Target = &target
	ev.Goal.Completed = progress >= target
	ev.Changed = ev.Goal.Completed != stored
	if ev.Goal.Completed {
		ev.Note = NoteAchieved
	} else {
		ev.Note = fmt.Sprintf("Progress: %s/%s %s", formatNumber(progress), formatNumber(target), ev.Metric)
	}
	ev.Status = goalStatus(ev.Goal.Completed)
	return ev
}

func goalStatus(completed bool) string {
	if completed {
		return StatusPositive
	}
	return StatusNeedsImprovement
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
