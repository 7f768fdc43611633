// Package wellness evaluates goals, builds reminders and scores a user's
// logs. Everything here is pure: callers fetch the data, pass an explicit
// "now" and decide what to persist.
package wellness

import (
	"strings"
	"time"
)

// Timeframe is the recurrence window of a goal.
type Timeframe int

const (
	TimeframeUnknown Timeframe = iota
	Daily
	Weekly
	Monthly
)

// ParseTimeframe maps goal type text to a Timeframe, ignoring case.
func ParseTimeframe(s string) Timeframe {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily":
		return Daily
	case "weekly":
		return Weekly
	case "monthly":
		return Monthly
	default:
		return TimeframeUnknown
	}
}

func (t Timeframe) String() string {
	switch t {
	case Daily:
		return "Daily"
	case Weekly:
		return "Weekly"
	case Monthly:
		return "Monthly"
	default:
		return "Unknown"
	}
}

// Label is the human phrase for the current period ("this week").
func (t Timeframe) Label() string {
	switch t {
	case Daily:
		return "today"
	case Monthly:
		return "this month"
	default:
		return "this week"
	}
}

// PeriodStart returns the inclusive start of the window [start, now) that
// counts towards a goal with the given timeframe. Unknown timeframes use the
// weekly policy. Midnight is taken in now's location.
func PeriodStart(tf Timeframe, now time.Time) time.Time {
	y, m, d := now.Date()
	switch tf {
	case Daily:
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case Monthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(y, m, d-6, 0, 0, 0, 0, now.Location())
	}
}

// StartOfDay returns 00:00:00 of t's day.
func StartOfDay(t time.Time) time.Time {
	return PeriodStart(Daily, t)
}
