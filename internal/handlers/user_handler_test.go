package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/config"
	"github.com/Dias221467/Wellness_Tracker/internal/handlers"
	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/internal/services"
	jwtutil "github.com/Dias221467/Wellness_Tracker/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubUserService struct {
	registerErr error
	authErr     error
	profile     *models.Profile
	lastUpdate  models.ProfileUpdate
}

func (s *stubUserService) RegisterUser(_ context.Context, u *models.User) (*models.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	u.ID = testUserID
	u.Role = "user"
	return u, nil
}

func (s *stubUserService) AuthenticateUser(_ context.Context, email, _ string) (*models.User, error) {
	if s.authErr != nil {
		return nil, s.authErr
	}
	return &models.User{ID: testUserID, Email: email, Role: "user"}, nil
}

func (s *stubUserService) GetUser(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	return &models.User{ID: id, Name: "Ann", Email: "ann@example.com"}, nil
}

func (s *stubUserService) GetProfile(_ context.Context, _ primitive.ObjectID) (*models.Profile, error) {
	if s.profile == nil {
		return nil, services.ErrNotFound
	}
	return s.profile, nil
}

func (s *stubUserService) UpdateProfile(_ context.Context, id primitive.ObjectID, upd models.ProfileUpdate) (*models.Profile, error) {
	s.lastUpdate = upd
	return &models.Profile{ID: id, HeightCm: *upd.HeightCm, WeightKg: *upd.WeightKg, BMI: 27.8, BMICategory: "Overweight"}, nil
}

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", TokenExpiry: time.Hour}
}

func TestRegisterUserHandler(t *testing.T) {
	h := handlers.NewUserHandler(&stubUserService{}, testConfig())
	body := `{"name":"Ann","email":"ann@example.com","password":"secret1"}`

	rec := httptest.NewRecorder()
	h.RegisterUserHandler(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Token string            `json:"token"`
		User  models.PublicUser `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ann@example.com", resp.User.Email)
	assert.NotContains(t, rec.Body.String(), "secret1")

	claims, err := jwtutil.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, testUserID.Hex(), claims.UserID)
}

func TestRegisterUserHandlerErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"malformed body", `{`, nil, http.StatusBadRequest},
		{"validation", `{"email":"x"}`, fmt.Errorf("%w: invalid email", services.ErrValidation), http.StatusBadRequest},
		{"duplicate email", `{"email":"ann@example.com"}`, fmt.Errorf("%w: email already registered", services.ErrConflict), http.StatusConflict},
		{"store failure", `{"email":"ann@example.com"}`, fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := handlers.NewUserHandler(&stubUserService{registerErr: tc.err}, testConfig())
			rec := httptest.NewRecorder()
			h.RegisterUserHandler(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tc.body)))
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestLoginUserHandler(t *testing.T) {
	h := handlers.NewUserHandler(&stubUserService{}, testConfig())
	rec := httptest.NewRecorder()
	h.LoginUserHandler(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ann@example.com","password":"secret1"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)

	h = handlers.NewUserHandler(&stubUserService{authErr: services.ErrUnauthorized}, testConfig())
	rec = httptest.NewRecorder()
	h.LoginUserHandler(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ann@example.com","password":"wrong"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeHandlerRequiresClaims(t *testing.T) {
	h := handlers.NewUserHandler(&stubUserService{}, testConfig())

	rec := httptest.NewRecorder()
	h.MeHandler(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	h.MeHandler(rec, authedRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), testUserID.Hex())
}

func TestProfileHandlers(t *testing.T) {
	svc := &stubUserService{}
	h := handlers.NewUserHandler(svc, testConfig())

	rec := httptest.NewRecorder()
	h.GetProfileHandler(rec, authedRequest(http.MethodGet, "/api/profile", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.UpdateProfileHandler(rec, authedRequest(http.MethodPut, "/api/profile", []byte(`{"height":180,"weight":90}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastUpdate.HeightCm)
	assert.Equal(t, 180.0, *svc.lastUpdate.HeightCm)
	assert.Nil(t, svc.lastUpdate.Name)
	assert.Contains(t, rec.Body.String(), `"bmi_category":"Overweight"`)
}
