package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/internal/wellness"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeReport(w io.Writer, r *wellness.Report) error {
	fmt.Fprintf(w, "Status: %s (score %d)\n", r.Status, r.Score)
	if len(r.FocusAreas) > 0 {
		fmt.Fprintf(w, "Focus on: %s\n", strings.Join(r.FocusAreas, ", "))
	}

	sections := []struct {
		name  string
		lines []string
	}{
		{"Workouts", r.Insights.Workouts},
		{"Nutrition", r.Insights.Foods},
		{"Goals", r.Insights.Goals},
		{"Mental health", r.Insights.Mental},
	}
	for _, s := range sections {
		for _, line := range s.lines {
			fmt.Fprintf(w, "  %s: %s\n", s.name, line)
		}
	}
	return nil
}

func writeReminders(w io.Writer, feed *models.ReminderFeed) error {
	if len(feed.AllReminders) == 0 {
		_, err := fmt.Fprintln(w, "No reminders")
		return err
	}

	unseen := make(map[string]bool, len(feed.Reminders))
	for _, r := range feed.Reminders {
		unseen[r] = true
	}
	for _, r := range feed.AllReminders {
		marker := " "
		if unseen[r] {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, r)
	}
	return nil
}

func writeGoals(w io.Writer, goals []wellness.EvaluatedGoal) error {
	if len(goals) == 0 {
		_, err := fmt.Fprintln(w, "No goals")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tPERIOD\tSTATUS\tNOTE")
	for _, g := range goals {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", g.ID.Hex(), g.Category, g.Period, g.Status, g.Note)
	}
	return tw.Flush()
}
