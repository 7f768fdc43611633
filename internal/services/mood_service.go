package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoodService validates and stores mental health check-ins.
type MoodService struct {
	repo MoodStore
	now  func() time.Time
}

func NewMoodService(repo MoodStore) *MoodService {
	return &MoodService{repo: repo, now: time.Now}
}

// CreateMood requires a mood. Values outside models.Moods are kept as typed.
func (s *MoodService) CreateMood(ctx context.Context, userID primitive.ObjectID, m *models.MoodEntry) (*models.MoodEntry, error) {
	m.Mood = strings.TrimSpace(m.Mood)
	if m.Mood == "" {
		logger.Log.WithField("user_id", userID.Hex()).Warn("Mood entry without mood")
		return nil, fmt.Errorf("%w: mood is required", ErrValidation)
	}
	if m.Date.IsZero() {
		m.Date = s.now()
	}
	m.ID = primitive.NilObjectID
	m.UserID = userID

	created, err := s.repo.CreateMood(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood entry: %w", err)
	}
	return created, nil
}

func (s *MoodService) ListMoods(ctx context.Context, userID primitive.ObjectID) ([]models.MoodEntry, error) {
	moods, err := s.repo.ListMoods(ctx, userID, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}
	return moods, nil
}

func (s *MoodService) DeleteMood(ctx context.Context, userID, id primitive.ObjectID) error {
	if err := s.repo.DeleteMood(ctx, id, userID); err != nil {
		return storeError(err, "delete mood entry")
	}
	return nil
}
