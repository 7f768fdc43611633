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

// FoodService validates and stores meal logs.
type FoodService struct {
	repo FoodStore
	now  func() time.Time
}

func NewFoodService(repo FoodStore) *FoodService {
	return &FoodService{repo: repo, now: time.Now}
}

// CreateFood requires a name and positive calories.
func (s *FoodService) CreateFood(ctx context.Context, userID primitive.ObjectID, f *models.Food) (*models.Food, error) {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" || f.Calories <= 0 {
		logger.Log.WithField("user_id", userID.Hex()).Warn("Food entry without name or calories")
		return nil, fmt.Errorf("%w: name and calories required", ErrValidation)
	}
	if f.Protein < 0 || f.Carbs < 0 || f.Fat < 0 {
		return nil, fmt.Errorf("%w: macros cannot be negative", ErrValidation)
	}
	if f.Date.IsZero() {
		f.Date = s.now()
	}
	f.ID = primitive.NilObjectID
	f.UserID = userID

	created, err := s.repo.CreateFood(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to create food entry: %w", err)
	}
	return created, nil
}

func (s *FoodService) ListFoods(ctx context.Context, userID primitive.ObjectID) ([]models.Food, error) {
	foods, err := s.repo.ListFoods(ctx, userID, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	return foods, nil
}

func (s *FoodService) DeleteFood(ctx context.Context, userID, id primitive.ObjectID) error {
	if err := s.repo.DeleteFood(ctx, id, userID); err != nil {
		return storeError(err, "delete food entry")
	}
	return nil
}
