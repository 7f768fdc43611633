package scheduler

import (
	"context"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// NudgeRunner is the part of services.NotificationService the jobs call.
type NudgeRunner interface {
	RunNudge(ctx context.Context, n services.Nudge) error
	DeleteExpiredNotifications(ctx context.Context) error
}

// Job is one scheduled entry.
type Job struct {
	Spec string
	Name string
	Run  func(ctx context.Context) error
}

// NotificationJobs lists the nudge schedule. Times are wall clock in the
// location the cron runs in.
func NotificationJobs(runner NudgeRunner) []Job {
	nudge := func(n services.Nudge) func(ctx context.Context) error {
		return func(ctx context.Context) error { return runner.RunNudge(ctx, n) }
	}
	return []Job{
		{Spec: "0 14 * * *", Name: "meal_nudge_afternoon", Run: nudge(services.MealNudge)},
		{Spec: "0 21 * * *", Name: "meal_nudge_evening", Run: nudge(services.MealNudge)},
		{Spec: "0 18 * * *", Name: "goal_review", Run: nudge(services.GoalReviewNudge)},
		{Spec: "0 19 * * *", Name: "workout_nudge", Run: nudge(services.WorkoutNudge)},
		{Spec: "0 20 * * *", Name: "mood_nudge", Run: nudge(services.MoodNudge)},
		{Spec: "0 10 * * *", Name: "inactive_users", Run: nudge(services.InactiveNudge)},
		{Spec: "5 0 * * *", Name: "expired_notifications", Run: runner.DeleteExpiredNotifications},
	}
}

// NewNotificationCron registers jobs on a cron in loc without starting it.
func NewNotificationCron(jobs []Job, loc *time.Location) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(loc))

	for _, job := range jobs {
		job := job
		_, err := c.AddFunc(job.Spec, func() {
			log := logrus.WithField("job", job.Name)
			if err := job.Run(context.Background()); err != nil {
				log.WithError(err).Error("Scheduled job failed")
				return
			}
			log.Debug("Scheduled job finished")
		})
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// StartNotificationCronJobs schedules and starts the notification jobs.
// Stop the returned cron on shutdown.
func StartNotificationCronJobs(runner NudgeRunner, loc *time.Location) (*cron.Cron, error) {
	c, err := NewNotificationCron(NotificationJobs(runner), loc)
	if err != nil {
		return nil, err
	}
	c.Start()
	logrus.WithField("jobs", len(c.Entries())).Info("Notification cron jobs started")
	return c, nil
}
