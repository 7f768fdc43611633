package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification kinds produced by the scheduled nudges.
const (
	NotificationMealNudge    = "meal_nudge"
	NotificationWorkoutNudge = "workout_nudge"
	NotificationMoodNudge    = "mood_nudge"
	NotificationGoalReview   = "goal_review"
	NotificationInactive     = "inactive_user"
)

type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Type      string             `bson:"type" json:"type"`
	Title     string             `bson:"title" json:"title"`
	Message   string             `bson:"message" json:"message"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"` // removed by the nightly cleanup after 7 days
}
