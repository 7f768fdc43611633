package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FoodService interface {
	CreateFood(ctx context.Context, userID primitive.ObjectID, f *models.Food) (*models.Food, error)
	ListFoods(ctx context.Context, userID primitive.ObjectID) ([]models.Food, error)
	DeleteFood(ctx context.Context, userID, id primitive.ObjectID) error
}

// FoodHandler serves /foods.
type FoodHandler struct {
	Service FoodService
}

func NewFoodHandler(service FoodService) *FoodHandler {
	return &FoodHandler{Service: service}
}

func (h *FoodHandler) CreateFoodHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var food models.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		logrus.WithError(err).Warn("Invalid request payload during food creation")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateFood(r.Context(), userID, &food)
	if err != nil {
		writeServiceError(w, err, "Failed to add food")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *FoodHandler) GetFoodsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	foods, err := h.Service.ListFoods(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch foods")
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

func (h *FoodHandler) DeleteFoodHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteFood(r.Context(), userID, id); err != nil {
		writeServiceError(w, err, "Failed to delete food")
		return
	}
	writeMessage(w, http.StatusOK, "Food deleted")
}
