package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReminderService interface {
	GetReminders(ctx context.Context, userID primitive.ObjectID) (*models.ReminderFeed, error)
	AcknowledgeReminders(ctx context.Context, userID primitive.ObjectID, reminders []string) error
}

type ReminderHandler struct {
	Service ReminderService
}

func NewReminderHandler(service ReminderService) *ReminderHandler {
	return &ReminderHandler{Service: service}
}

// GET /reminders
func (h *ReminderHandler) GetRemindersHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	feed, err := h.Service.GetReminders(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Error generating reminders")
		return
	}
	writeJSON(w, http.StatusOK, feed)
}

// POST /reminders/viewed. A missing body acknowledges nothing, clearing
// the previous set.
func (h *ReminderHandler) MarkViewedHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var body struct {
		Reminders []string `json:"reminders"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		logrus.WithError(err).Warn("Invalid request payload for viewed reminders")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.Service.AcknowledgeReminders(r.Context(), userID, body.Reminders); err != nil {
		writeServiceError(w, err, "Failed to mark reminders as viewed")
		return
	}
	writeMessage(w, http.StatusOK, "Reminders marked as viewed")
}
