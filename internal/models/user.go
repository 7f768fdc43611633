package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account in the Wellness Tracker system.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name           string             `bson:"name" json:"name"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"-" json:"password,omitempty"`
	HashedPassword string             `bson:"hashed_password" json:"-"`
	Age            int                `bson:"age,omitempty" json:"age,omitempty"`
	HeightCm       float64            `bson:"height_cm,omitempty" json:"height,omitempty"`
	WeightKg       float64            `bson:"weight_kg,omitempty" json:"weight,omitempty"`
	Preference     string             `bson:"preference,omitempty" json:"preference,omitempty"` // weight_loss, muscle_gain, ...
	Role           string             `bson:"role" json:"role"`
	LastActiveAt   time.Time          `bson:"last_active_at,omitempty" json:"last_active_at,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

type PublicUser struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

// Public strips everything but the identity fields.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// ProfileUpdate carries the editable profile fields. Nil means "leave as is".
type ProfileUpdate struct {
	Name       *string  `json:"name,omitempty"`
	Age        *int     `json:"age,omitempty"`
	HeightCm   *float64 `json:"height,omitempty"`
	WeightKg   *float64 `json:"weight,omitempty"`
	Preference *string  `json:"preference,omitempty"`
}

// Profile is the user view returned by the profile endpoints.
type Profile struct {
	ID          primitive.ObjectID `json:"_id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Age         int                `json:"age,omitempty"`
	HeightCm    float64            `json:"height,omitempty"`
	WeightKg    float64            `json:"weight,omitempty"`
	Preference  string             `json:"preference,omitempty"`
	BMI         float64            `json:"bmi,omitempty"`
	BMICategory string             `json:"bmi_category,omitempty"`
}
