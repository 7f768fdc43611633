package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Goal timeframes accepted on creation.
const (
	TimeframeDaily   = "Daily"
	TimeframeWeekly  = "Weekly"
	TimeframeMonthly = "Monthly"
)

// Goal is a recurring target. Completed is a cached value that is
// recomputed from the logs every time goals are listed.
type Goal struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID               primitive.ObjectID `bson:"user_id" json:"user"`
	Type                 string             `bson:"type" json:"type"` // Daily, Weekly, Monthly
	Category             string             `bson:"category" json:"category"`
	TargetCalories       float64            `bson:"target_calories" json:"targetCalories"`
	TargetWorkoutMinutes float64            `bson:"target_workout_minutes" json:"targetWorkoutMinutes"`
	Completed            bool               `bson:"completed" json:"completed"`
	CreatedAt            time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updated_at" json:"updatedAt"`
}
