package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mood vocabulary offered by the client. Free text is accepted as well.
const (
	MoodHappy    = "Happy"
	MoodNeutral  = "Neutral"
	MoodSad      = "Sad"
	MoodStressed = "Stressed"
	MoodAnxious  = "Anxious"
)

// Moods lists the fixed vocabulary in display order.
var Moods = []string{MoodHappy, MoodNeutral, MoodSad, MoodStressed, MoodAnxious}

// MoodEntry is a mental health check-in.
type MoodEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user"`
	Mood      string             `bson:"mood" json:"mood"`
	Note      string             `bson:"note,omitempty" json:"note,omitempty"`
	Date      time.Time          `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
