package handlers

import (
	"context"
	"net/http"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationService interface {
	GetUserNotifications(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error)
	MarkNotificationAsRead(ctx context.Context, userID, notifID primitive.ObjectID) error
	DeleteNotification(ctx context.Context, userID, notifID primitive.ObjectID) error
}

type NotificationHandler struct {
	Service NotificationService
}

func NewNotificationHandler(service NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: service}
}

// GET /notifications
func (h *NotificationHandler) GetUserNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	notifications, err := h.Service.GetUserNotifications(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to get notifications")
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

// POST /notifications/{id}/read
func (h *NotificationHandler) MarkAsReadHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	notifID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Service.MarkNotificationAsRead(r.Context(), userID, notifID); err != nil {
		writeServiceError(w, err, "Failed to mark as read")
		return
	}
	writeMessage(w, http.StatusOK, "Notification marked as read")
}

// DELETE /notifications/{id}
func (h *NotificationHandler) DeleteNotificationHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	notifID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteNotification(r.Context(), userID, notifID); err != nil {
		writeServiceError(w, err, "Failed to delete notification")
		return
	}
	logger.Log.WithField("notification_id", notifID.Hex()).Info("Notification deleted")
	writeMessage(w, http.StatusOK, "Notification deleted")
}
