package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MoodService interface {
	CreateMood(ctx context.Context, userID primitive.ObjectID, m *models.MoodEntry) (*models.MoodEntry, error)
	ListMoods(ctx context.Context, userID primitive.ObjectID) ([]models.MoodEntry, error)
	DeleteMood(ctx context.Context, userID, id primitive.ObjectID) error
}

// MoodHandler serves /mental-logs.
type MoodHandler struct {
	Service MoodService
}

func NewMoodHandler(service MoodService) *MoodHandler {
	return &MoodHandler{Service: service}
}

func (h *MoodHandler) CreateMoodHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var entry models.MoodEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during mood log")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateMood(r.Context(), userID, &entry)
	if err != nil {
		writeServiceError(w, err, "Failed to add mental log")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *MoodHandler) GetMoodsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	moods, err := h.Service.ListMoods(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch mental logs")
		return
	}
	writeJSON(w, http.StatusOK, moods)
}

func (h *MoodHandler) DeleteMoodHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteMood(r.Context(), userID, id); err != nil {
		writeServiceError(w, err, "Failed to delete mental log")
		return
	}
	writeMessage(w, http.StatusOK, "Mental log deleted")
}
