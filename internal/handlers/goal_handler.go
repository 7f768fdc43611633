package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/internal/services"
	"github.com/Dias221467/Wellness_Tracker/internal/wellness"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GoalService interface {
	CreateGoal(ctx context.Context, userID primitive.ObjectID, goal *models.Goal) (*models.Goal, error)
	ListGoals(ctx context.Context, userID primitive.ObjectID) ([]wellness.EvaluatedGoal, error)
	DeleteGoal(ctx context.Context, userID, id primitive.ObjectID) error
}

// GoalHandler handles HTTP requests related to goals.
type GoalHandler struct {
	Service GoalService
}

// NewGoalHandler creates a new instance of GoalHandler.
func NewGoalHandler(goalService GoalService) *GoalHandler {
	return &GoalHandler{Service: goalService}
}

// formNumber accepts a JSON number or a numeric string, since web forms post
// their field values as text. An empty string or null reads as 0.
type formNumber struct {
	value float64
	raw   string
	bad   bool
}

func (n *formNumber) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n.raw = strings.TrimSpace(s)
		if n.raw == "" {
			return nil
		}
		v, err := strconv.ParseFloat(n.raw, 64)
		if err != nil {
			n.bad = true
			return nil
		}
		n.value = v
		return nil
	}
	return json.Unmarshal(data, &n.value)
}

type createGoalRequest struct {
	Type                 string     `json:"type"`
	Category             string     `json:"category"`
	TargetCalories       formNumber `json:"targetCalories"`
	TargetWorkoutMinutes formNumber `json:"targetWorkoutMinutes"`
}

func (req createGoalRequest) goal() (*models.Goal, error) {
	targets := []struct {
		field string
		n     formNumber
	}{
		{"targetCalories", req.TargetCalories},
		{"targetWorkoutMinutes", req.TargetWorkoutMinutes},
	}
	for _, t := range targets {
		if t.n.bad {
			return nil, fmt.Errorf("%w: %s must be a number, got %q", services.ErrValidation, t.field, t.n.raw)
		}
	}
	return &models.Goal{
		Type:                 req.Type,
		Category:             req.Category,
		TargetCalories:       req.TargetCalories.value,
		TargetWorkoutMinutes: req.TargetWorkoutMinutes.value,
	}, nil
}

// CreateGoalHandler handles the creation of a new goal.
func (h *GoalHandler) CreateGoalHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during goal creation")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	goal, err := req.goal()
	if err != nil {
		writeServiceError(w, err, "Failed to create goal")
		return
	}

	createdGoal, err := h.Service.CreateGoal(r.Context(), userID, goal)
	if err != nil {
		writeServiceError(w, err, "Failed to create goal")
		return
	}

	logrus.WithFields(logrus.Fields{
		"goal_id": createdGoal.ID.Hex(),
		"user_id": userID.Hex(),
	}).Info("Goal created")
	writeJSON(w, http.StatusCreated, createdGoal)
}

// GetGoalsHandler returns the user's goals with completion recomputed.
func (h *GoalHandler) GetGoalsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	goals, err := h.Service.ListGoals(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch goals")
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

// DeleteGoalHandler deletes one of the user's goals.
func (h *GoalHandler) DeleteGoalHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteGoal(r.Context(), userID, id); err != nil {
		writeServiceError(w, err, "Failed to delete goal")
		return
	}
	writeMessage(w, http.StatusOK, "Goal deleted")
}
