package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReminderAck is the set of reminder messages a user acknowledged last.
type ReminderAck struct {
	UserID    primitive.ObjectID `bson:"_id" json:"user"`
	Reminders []string           `bson:"reminders" json:"reminders"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// ReminderFeed is the payload served by GET /reminders.
type ReminderFeed struct {
	Reminders    []string `json:"reminders"`
	AllReminders []string `json:"allReminders"`
	HasNew       bool     `json:"hasNew"`
}
