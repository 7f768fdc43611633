package handlers

import (
	"context"
	"net/http"

	"github.com/Dias221467/Wellness_Tracker/internal/wellness"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WellnessService interface {
	Report(ctx context.Context, userID primitive.ObjectID) (*wellness.Report, error)
	Dashboard(ctx context.Context, userID primitive.ObjectID) (*wellness.Dashboard, error)
}

// WellnessHandler serves the derived views: history report and dashboard.
type WellnessHandler struct {
	Service WellnessService
}

func NewWellnessHandler(service WellnessService) *WellnessHandler {
	return &WellnessHandler{Service: service}
}

// GET /wellness/history
func (h *WellnessHandler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	report, err := h.Service.Report(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to build wellness report")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// GET /dashboard
func (h *WellnessHandler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	dashboard, err := h.Service.Dashboard(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to build dashboard")
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}
