package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a single logged meal or snack.
type Food struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user"`
	Name      string             `bson:"name" json:"name"`
	Calories  float64            `bson:"calories" json:"calories"`
	Protein   float64            `bson:"protein,omitempty" json:"protein,omitempty"` // grams
	Carbs     float64            `bson:"carbs,omitempty" json:"carbs,omitempty"`     // grams
	Fat       float64            `bson:"fat,omitempty" json:"fat,omitempty"`         // grams
	Date      time.Time          `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
