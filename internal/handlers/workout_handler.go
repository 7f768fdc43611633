package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WorkoutService interface {
	CreateWorkout(ctx context.Context, userID primitive.ObjectID, w *models.Workout) (*models.Workout, error)
	ListWorkouts(ctx context.Context, userID primitive.ObjectID) ([]models.Workout, error)
	DeleteWorkout(ctx context.Context, userID, id primitive.ObjectID) error
}

// WorkoutHandler serves /workouts.
type WorkoutHandler struct {
	Service WorkoutService
}

func NewWorkoutHandler(service WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{Service: service}
}

func (h *WorkoutHandler) CreateWorkoutHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during workout creation")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateWorkout(r.Context(), userID, &workout)
	if err != nil {
		writeServiceError(w, err, "Failed to create workout")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *WorkoutHandler) GetWorkoutsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	workouts, err := h.Service.ListWorkouts(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch workouts")
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (h *WorkoutHandler) DeleteWorkoutHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteWorkout(r.Context(), userID, id); err != nil {
		writeServiceError(w, err, "Failed to delete workout")
		return
	}
	writeMessage(w, http.StatusOK, "Workout deleted")
}
