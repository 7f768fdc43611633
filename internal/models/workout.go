package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout is a single logged training session.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user"`
	Type      string             `bson:"type" json:"type"`         // running, yoga, ...
	Duration  float64            `bson:"duration" json:"duration"` // minutes
	Distance  float64            `bson:"distance,omitempty" json:"distance,omitempty"`
	Calories  float64            `bson:"calories,omitempty" json:"calories,omitempty"` // burned
	Date      time.Time          `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
