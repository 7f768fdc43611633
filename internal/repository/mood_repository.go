package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MoodRepository stores mental health check-ins.
type MoodRepository struct {
	collection *mongo.Collection
}

func NewMoodRepository(db *mongo.Database) *MoodRepository {
	return &MoodRepository{
		collection: db.Collection("mental_logs"),
	}
}

func (r *MoodRepository) CreateMood(ctx context.Context, m *models.MoodEntry) (*models.MoodEntry, error) {
	m.CreatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, m)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", m.UserID.Hex()).Error("Failed to insert mood entry")
		return nil, fmt.Errorf("failed to insert mood entry: %w", err)
	}
	m.ID = insertedID(res)

	logger.Log.WithField("mood_id", m.ID.Hex()).Info("Mood entry created successfully")
	return m, nil
}

// ListMoods returns the user's mood entries dated on or after since, newest
// first. A zero since returns all of them.
func (r *MoodRepository) ListMoods(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]models.MoodEntry, error) {
	moods := []models.MoodEntry{}
	if err := findByUser(ctx, r.collection, userID, since, &moods); err != nil {
		logger.Log.WithError(err).WithField("user_id", userID.Hex()).Error("Failed to fetch mood entries")
		return nil, fmt.Errorf("failed to fetch mood entries: %w", err)
	}
	return moods, nil
}

func (r *MoodRepository) DeleteMood(ctx context.Context, id, userID primitive.ObjectID) error {
	if err := deleteOwned(ctx, r.collection, id, userID); err != nil {
		logger.Log.WithError(err).WithField("mood_id", id.Hex()).Warn("Failed to delete mood entry")
		return err
	}
	logger.Log.WithField("mood_id", id.Hex()).Info("Mood entry deleted successfully")
	return nil
}
