package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	nudges  []string
	cleaned int
}

func (r *recordingRunner) RunNudge(_ context.Context, n services.Nudge) error {
	r.nudges = append(r.nudges, n.Type)
	return nil
}

func (r *recordingRunner) DeleteExpiredNotifications(context.Context) error {
	r.cleaned++
	return nil
}

func TestNotificationJobsSchedule(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)

	c, err := NewNotificationCron(NotificationJobs(&recordingRunner{}), loc)
	require.NoError(t, err)
	require.Len(t, c.Entries(), 7)

	from := time.Date(2026, 3, 4, 13, 30, 0, 0, loc)
	var next []time.Time
	for _, e := range c.Entries() {
		next = append(next, e.Schedule.Next(from))
	}
	assert.Contains(t, next, time.Date(2026, 3, 4, 14, 0, 0, 0, loc))
	assert.Contains(t, next, time.Date(2026, 3, 4, 21, 0, 0, 0, loc))
	assert.Contains(t, next, time.Date(2026, 3, 5, 0, 5, 0, 0, loc))
}

func TestNotificationJobsRunTheirNudge(t *testing.T) {
	runner := &recordingRunner{}
	for _, job := range NotificationJobs(runner) {
		require.NoError(t, job.Run(context.Background()))
	}

	assert.Equal(t, []string{
		services.MealNudge.Type,
		services.MealNudge.Type,
		services.GoalReviewNudge.Type,
		services.WorkoutNudge.Type,
		services.MoodNudge.Type,
		services.InactiveNudge.Type,
	}, runner.nudges)
	assert.Equal(t, 1, runner.cleaned)
}

func TestNewNotificationCronRejectsBadSpec(t *testing.T) {
	jobs := []Job{{Spec: "every now and then", Name: "bad", Run: func(context.Context) error { return errors.New("unused") }}}
	_, err := NewNotificationCron(jobs, time.UTC)
	assert.Error(t, err)
}
