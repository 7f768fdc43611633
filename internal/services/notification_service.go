package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/internal/repository"
	"github.com/Dias221467/Wellness_Tracker/internal/wellness"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NudgeCooldown is the minimum gap between two nudges of the same type for
// one user.
const NudgeCooldown = 6 * time.Hour

// InactiveAfter is how long a user must be away before InactiveNudge fires.
const InactiveAfter = 3 * 24 * time.Hour

// Broadcaster pushes a payload to a user's live connections.
type Broadcaster interface {
	Send(userID primitive.ObjectID, payload interface{})
}

// Emailer sends plain text email.
type Emailer interface {
	SendEmail(to, subject, body string) error
}

// Nudge is a scheduled notification and the condition that triggers it.
type Nudge struct {
	Type    string
	Title   string
	Message string
	due     func(ctx context.Context, s *NotificationService, user models.User, now time.Time) (bool, error)
}

var (
	MealNudge = Nudge{
		Type:    models.NotificationMealNudge,
		Title:   "Reminder: Log Meals",
		Message: "Don't forget to track what you ate today!",
		due: func(ctx context.Context, s *NotificationService, user models.User, now time.Time) (bool, error) {
			foods, err := s.foods.ListFoods(ctx, user.ID, wellness.StartOfDay(now))
			return len(foods) == 0, err
		},
	}
	WorkoutNudge = Nudge{
		Type:    models.NotificationWorkoutNudge,
		Title:   "Reminder: Quick Workout",
		Message: "You've logged under 30 mins today. Try a short walk or yoga.",
		due: func(ctx context.Context, s *NotificationService, user models.User, now time.Time) (bool, error) {
			workouts, err := s.workouts.ListWorkouts(ctx, user.ID, wellness.StartOfDay(now))
			if err != nil {
				return false, err
			}
			var minutes float64
			for _, w := range workouts {
				minutes += w.Duration
			}
			return minutes < wellness.MinDailyWorkoutMinutes, nil
		},
	}
	MoodNudge = Nudge{
		Type:    models.NotificationMoodNudge,
		Title:   "Reminder: Mood Check-In",
		Message: "Log how you're feeling today, it helps track your wellness.",
		due: func(ctx context.Context, s *NotificationService, user models.User, now time.Time) (bool, error) {
			moods, err := s.moods.ListMoods(ctx, user.ID, wellness.StartOfDay(now))
			return len(moods) == 0, err
		},
	}
	GoalReviewNudge = Nudge{
		Type:    models.NotificationGoalReview,
		Title:   "Reminder: Review Goals",
		Message: "Take a moment to check your goals and progress today.",
		due: func(ctx context.Context, s *NotificationService, user models.User, _ time.Time) (bool, error) {
			goals, err := s.goals.GetGoalsByUser(ctx, user.ID)
			return len(goals) > 0, err
		},
	}
	InactiveNudge = Nudge{
		Type:    models.NotificationInactive,
		Title:   "We miss you!",
		Message: "You haven't checked in for a few days. Log a workout, a meal or your mood to keep your streak going.",
		due: func(_ context.Context, _ *NotificationService, user models.User, now time.Time) (bool, error) {
			// Users who never made an authenticated request are left alone.
			return !user.LastActiveAt.IsZero() && now.Sub(user.LastActiveAt) >= InactiveAfter, nil
		},
	}
)

type NotificationService struct {
	repo     NotificationStore
	users    UserStore
	goals    GoalStore
	workouts WorkoutStore
	foods    FoodStore
	moods    MoodStore
	hub      Broadcaster
	mailer   Emailer
	now      func() time.Time
}

// NewNotificationService wires the nudge checks. hub and mailer may be nil.
func NewNotificationService(repo NotificationStore, users UserStore, goals GoalStore, workouts WorkoutStore, foods FoodStore, moods MoodStore, hub Broadcaster, mailer Emailer, loc *time.Location) *NotificationService {
	return &NotificationService{
		repo:     repo,
		users:    users,
		goals:    goals,
		workouts: workouts,
		foods:    foods,
		moods:    moods,
		hub:      hub,
		mailer:   mailer,
		now:      clockIn(loc),
	}
}

// CreateNotification stores a notification and pushes it to live clients.
func (s *NotificationService) CreateNotification(ctx context.Context, userID primitive.ObjectID, notifType, title, message string) (*models.Notification, error) {
	notif := &models.Notification{
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Message:   message,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateNotification(ctx, notif); err != nil {
		return nil, err
	}
	if s.hub != nil {
		s.hub.Send(userID, notif)
	}
	return notif, nil
}

// GetUserNotifications returns all live notifications for a user
func (s *NotificationService) GetUserNotifications(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	notifications, err := s.repo.GetUserNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationAsRead sets the "read" status of one of the user's notifications
func (s *NotificationService) MarkNotificationAsRead(ctx context.Context, userID, notifID primitive.ObjectID) error {
	if err := s.repo.MarkAsRead(ctx, notifID, userID); err != nil {
		return storeError(err, "mark notification as read")
	}
	return nil
}

// DeleteNotification deletes one of the user's notifications
func (s *NotificationService) DeleteNotification(ctx context.Context, userID, notifID primitive.ObjectID) error {
	if err := s.repo.DeleteNotification(ctx, notifID, userID); err != nil {
		return storeError(err, "delete notification")
	}
	return nil
}

func (s *NotificationService) DeleteExpiredNotifications(ctx context.Context) error {
	_, err := s.repo.DeleteExpiredNotifications(ctx, s.now())
	return err
}

// RunNudge checks every user against n and notifies those it applies to.
// Users nudged with the same type within NudgeCooldown are skipped. A
// failure for one user is logged and does not stop the others.
func (s *NotificationService) RunNudge(ctx context.Context, n Nudge) error {
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch users: %w", err)
	}

	now := s.now()
	sent := 0
	for _, user := range users {
		existing, err := s.repo.GetLatestNotificationByType(ctx, user.ID, n.Type)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			logrus.WithError(err).Warnf("Failed to check previous %s for user %s", n.Type, user.ID.Hex())
			continue
		}
		if existing != nil && now.Sub(existing.CreatedAt) < NudgeCooldown {
			continue
		}

		due, err := n.due(ctx, s, user, now)
		if err != nil {
			logrus.WithError(err).Warnf("Failed to evaluate %s for user %s", n.Type, user.ID.Hex())
			continue
		}
		if !due {
			continue
		}

		if _, err := s.CreateNotification(ctx, user.ID, n.Type, n.Title, n.Message); err != nil {
			logrus.WithError(err).Warnf("Failed to send %s to user %s", n.Type, user.ID.Hex())
			continue
		}
		sent++

		if s.mailer != nil && user.Email != "" {
			if err := s.mailer.SendEmail(user.Email, n.Title, n.Message); err != nil {
				logrus.WithError(err).Warnf("Failed to email %s to user %s", n.Type, user.ID.Hex())
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"type": n.Type,
		"sent": sent,
	}).Info("Nudge run finished")
	return nil
}
