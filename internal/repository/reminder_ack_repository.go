package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReminderAckRepository keeps one acknowledged-reminder document per user,
// keyed by the user id.
type ReminderAckRepository struct {
	collection *mongo.Collection
}

func NewReminderAckRepository(db *mongo.Database) *ReminderAckRepository {
	return &ReminderAckRepository{
		collection: db.Collection("reminder_acks"),
	}
}

// GetAcknowledged returns the last acknowledged set, empty if none.
func (r *ReminderAckRepository) GetAcknowledged(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	var ack models.ReminderAck
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&ack)
	if err != nil {
		if translate(err) == ErrNotFound {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to fetch acknowledged reminders: %w", err)
	}
	if ack.Reminders == nil {
		return []string{}, nil
	}
	return ack.Reminders, nil
}

// SetAcknowledged replaces the acknowledged set.
func (r *ReminderAckRepository) SetAcknowledged(ctx context.Context, userID primitive.ObjectID, reminders []string) error {
	if reminders == nil {
		reminders = []string{}
	}
	doc := models.ReminderAck{UserID: userID, Reminders: reminders, UpdatedAt: time.Now()}

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": userID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Error("Failed to store acknowledged reminders")
		return fmt.Errorf("failed to store acknowledged reminders: %w", err)
	}
	return nil
}
