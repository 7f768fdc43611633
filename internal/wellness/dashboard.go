package wellness

import (
	"fmt"
	"strings"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
)

// Dashboard tip thresholds.
const (
	WeeklyMinutesTarget  = 150
	DailyCaloriesCeiling = 2200
)

const TipOnTrack = "You're on track, keep it up!"

type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

type DayMinutes struct {
	Date    string  `json:"date"`
	Minutes float64 `json:"minutes"`
}

type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// Dashboard summarises all logs plus the trailing week.
type Dashboard struct {
	TotalMinutes  float64      `json:"totalMinutes"`
	TotalCalories float64      `json:"totalCalories"`
	Macros        Macros       `json:"macros"`
	WeeklyMinutes []DayMinutes `json:"weeklyMinutes"`
	MoodCounts    []MoodCount  `json:"moodCounts"`
	Tips          []string     `json:"tips"`
}

func BuildDashboard(workouts []models.Workout, foods []models.Food, moods []models.MoodEntry, now time.Time) Dashboard {
	var d Dashboard
	for _, w := range workouts {
		d.TotalMinutes += w.Duration
	}
	for _, f := range foods {
		d.TotalCalories += f.Calories
		d.Macros.Protein += f.Protein
		d.Macros.Carbs += f.Carbs
		d.Macros.Fat += f.Fat
	}

	d.WeeklyMinutes = minutesPerDay(workouts, now)

	d.MoodCounts = make([]MoodCount, 0, len(models.Moods))
	for _, mood := range models.Moods {
		c := MoodCount{Mood: mood}
		for _, m := range moods {
			if strings.EqualFold(strings.TrimSpace(m.Mood), mood) {
				c.Count++
			}
		}
		d.MoodCounts = append(d.MoodCounts, c)
	}

	d.Tips = dashboardTips(workouts, foods, now)
	return d
}

// minutesPerDay buckets workout minutes into the last seven calendar days,
// oldest first.
func minutesPerDay(workouts []models.Workout, now time.Time) []DayMinutes {
	start := PeriodStart(Weekly, now)
	days := make([]DayMinutes, 7)
	index := make(map[string]int, 7)
	for i := range days {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		days[i].Date = day
		index[day] = i
	}
	for _, w := range workouts {
		if i, ok := index[w.Date.In(now.Location()).Format("2006-01-02")]; ok {
			days[i].Minutes += w.Duration
		}
	}
	return days
}

func dashboardTips(workouts []models.Workout, foods []models.Food, now time.Time) []string {
	weekStart := PeriodStart(Weekly, now)
	var weekMinutes float64
	for _, w := range workouts {
		if !w.Date.Before(weekStart) {
			weekMinutes += w.Duration
		}
	}
	today := StartOfDay(now)
	var todayCalories float64
	for _, f := range foods {
		if !f.Date.Before(today) {
			todayCalories += f.Calories
		}
	}

	tips := []string{}
	if weekMinutes < WeeklyMinutesTarget {
		tips = append(tips, fmt.Sprintf("You logged %s mins this week. Try a 20-min walk today.", formatNumber(weekMinutes)))
	}
	if todayCalories > DailyCaloriesCeiling {
		tips = append(tips, fmt.Sprintf("You've consumed %s kcal today. Consider lighter dinner or a walk.", formatNumber(todayCalories)))
	}
	if len(tips) == 0 {
		tips = append(tips, TipOnTrack)
	}
	return tips
}
