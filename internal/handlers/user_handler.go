package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Dias221467/Wellness_Tracker/internal/config"
	"github.com/Dias221467/Wellness_Tracker/internal/models"
	jwtutil "github.com/Dias221467/Wellness_Tracker/pkg/jwt"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService is what UserHandler needs from the user service.
type UserService interface {
	RegisterUser(ctx context.Context, user *models.User) (*models.User, error)
	AuthenticateUser(ctx context.Context, email, password string) (*models.User, error)
	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetProfile(ctx context.Context, id primitive.ObjectID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, upd models.ProfileUpdate) (*models.Profile, error)
}

// UserHandler handles authentication and profile requests.
type UserHandler struct {
	Service UserService
	Config  *config.Config
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(service UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		Service: service,
		Config:  cfg,
	}
}

type authResponse struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

func (h *UserHandler) issueToken(w http.ResponseWriter, user *models.User, status int) {
	token, err := jwtutil.GenerateToken(user.ID.Hex(), user.Email, user.Role, h.Config.JWTSecret, h.Config.TokenExpiry)
	if err != nil {
		log.WithError(err).Error("Failed to generate JWT token")
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, status, authResponse{Token: token, User: user.Public()})
}

// RegisterUserHandler handles user registration.
func (h *UserHandler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.WithError(err).Warn("Failed to decode user registration request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	createdUser, err := h.Service.RegisterUser(r.Context(), &user)
	if err != nil {
		writeServiceError(w, err, "Failed to register user")
		return
	}

	log.WithField("userID", createdUser.ID.Hex()).Info("User registered successfully")
	h.issueToken(w, createdUser, http.StatusCreated)
}

// LoginUserHandler handles user login.
func (h *UserHandler) LoginUserHandler(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.WithError(err).Warn("Failed to decode login request")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	user, err := h.Service.AuthenticateUser(r.Context(), credentials.Email, credentials.Password)
	if err != nil {
		log.WithFields(log.Fields{
			"email": credentials.Email,
			"error": err,
		}).Warn("Authentication failed")
		writeServiceError(w, err, "Failed to log in")
		return
	}

	log.WithField("userID", user.ID.Hex()).Info("User logged in successfully")
	h.issueToken(w, user, http.StatusOK)
}

// MeHandler returns the authenticated user.
func (h *UserHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	user, err := h.Service.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch user")
		return
	}
	writeJSON(w, http.StatusOK, user.Public())
}

func (h *UserHandler) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	profile, err := h.Service.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "Failed to fetch profile")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var upd models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		log.WithError(err).Warn("Failed to decode profile update")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	profile, err := h.Service.UpdateProfile(r.Context(), userID, upd)
	if err != nil {
		writeServiceError(w, err, "Failed to update profile")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
