package services

import (
	"context"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The store interfaces below are what the services need from persistence.
// internal/repository provides the MongoDB implementations.

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	UpdateLastActive(ctx context.Context, id primitive.ObjectID, at time.Time) error
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// WorkoutStore lists entries dated on or after since; a zero since means all.
type WorkoutStore interface {
	CreateWorkout(ctx context.Context, w *models.Workout) (*models.Workout, error)
	ListWorkouts(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]models.Workout, error)
	DeleteWorkout(ctx context.Context, id, userID primitive.ObjectID) error
}

type FoodStore interface {
	CreateFood(ctx context.Context, f *models.Food) (*models.Food, error)
	ListFoods(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]models.Food, error)
	DeleteFood(ctx context.Context, id, userID primitive.ObjectID) error
}

type MoodStore interface {
	CreateMood(ctx context.Context, m *models.MoodEntry) (*models.MoodEntry, error)
	ListMoods(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]models.MoodEntry, error)
	DeleteMood(ctx context.Context, id, userID primitive.ObjectID) error
}

type GoalStore interface {
	CreateGoal(ctx context.Context, goal *models.Goal) (*models.Goal, error)
	GetGoalsByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Goal, error)
	// UpdateGoalCompletion is a single-document atomic update of the
	// completed flag.
	UpdateGoalCompletion(ctx context.Context, id primitive.ObjectID, completed bool) error
	DeleteGoal(ctx context.Context, id, userID primitive.ObjectID) error
}

// AckStore keeps the last acknowledged reminder set per user.
type AckStore interface {
	GetAcknowledged(ctx context.Context, userID primitive.ObjectID) ([]string, error)
	SetAcknowledged(ctx context.Context, userID primitive.ObjectID, reminders []string) error
}

type NotificationStore interface {
	CreateNotification(ctx context.Context, notif *models.Notification) error
	GetUserNotifications(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, id, userID primitive.ObjectID) error
	DeleteNotification(ctx context.Context, id, userID primitive.ObjectID) error
	GetLatestNotificationByType(ctx context.Context, userID primitive.ObjectID, notifType string) (*models.Notification, error)
	DeleteExpiredNotifications(ctx context.Context, now time.Time) (int64, error)
}
