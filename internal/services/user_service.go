package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/internal/repository"
	"github.com/Dias221467/Wellness_Tracker/internal/wellness"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const minPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// UserService encapsulates the business logic for user operations.
type UserService struct {
	repo UserStore
	now  func() time.Time
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo UserStore) *UserService {
	return &UserService{
		repo: repo,
		now:  time.Now,
	}
}

// RegisterUser validates and stores a new user with a bcrypt-hashed password.
func (s *UserService) RegisterUser(ctx context.Context, user *models.User) (*models.User, error) {
	logrus.Info("Registering new user")

	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if user.Name == "" || user.Email == "" || user.Password == "" {
		logrus.Warn("Missing required fields during registration")
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}
	if !emailRegex.MatchString(user.Email) {
		logrus.WithField("email", user.Email).Warn("Invalid email format during registration")
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if len(user.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}

	existing, err := s.repo.GetUserByEmail(ctx, user.Email)
	switch {
	case err == nil && existing != nil:
		logrus.WithField("email", user.Email).Warn("Email already in use")
		return nil, fmt.Errorf("%w: email already in use", ErrConflict)
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Password hashing failed")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = string(hashedPwd)
	user.Password = ""
	if user.Role == "" {
		user.Role = "user"
	}

	createdUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already in use", ErrConflict)
		}
		logrus.WithError(err).Error("User registration failed")
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"userID": createdUser.ID.Hex(),
		"role":   createdUser.Role,
	}).Info("User registered successfully")
	return createdUser, nil
}

// AuthenticateUser verifies the email and password and returns the user if credentials are valid.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	logrus.WithField("email", email).Info("Authenticating user")

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logrus.WithField("email", email).Warn("User not found")
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		logrus.WithField("email", email).Warn("Invalid password")
		return nil, ErrUnauthorized
	}
	return user, nil
}

// GetUser returns a user by id.
func (s *UserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "get user")
	}
	return user, nil
}

// GetProfile returns the user's profile with BMI filled in when possible.
func (s *UserService) GetProfile(ctx context.Context, id primitive.ObjectID) (*models.Profile, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return profileOf(user), nil
}

// UpdateProfile applies the non-nil fields of upd.
func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd models.ProfileUpdate) (*models.Profile, error) {
	if err := validateProfile(upd); err != nil {
		return nil, err
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Age != nil {
		user.Age = *upd.Age
	}
	if upd.HeightCm != nil {
		user.HeightCm = *upd.HeightCm
	}
	if upd.WeightKg != nil {
		user.WeightKg = *upd.WeightKg
	}
	if upd.Preference != nil {
		user.Preference = strings.TrimSpace(*upd.Preference)
	}

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		return nil, storeError(err, "update profile")
	}

	logrus.WithField("userID", id.Hex()).Info("Profile updated")
	return profileOf(user), nil
}

// UpdateLastActive records that the user made an authenticated request.
func (s *UserService) UpdateLastActive(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.UpdateLastActive(ctx, id, s.now())
}

func validateProfile(upd models.ProfileUpdate) error {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	if upd.Age != nil && (*upd.Age < 0 || *upd.Age > 150) {
		return fmt.Errorf("%w: age must be between 0 and 150", ErrValidation)
	}
	if upd.HeightCm != nil && *upd.HeightCm < 0 {
		return fmt.Errorf("%w: height cannot be negative", ErrValidation)
	}
	if upd.WeightKg != nil && *upd.WeightKg < 0 {
		return fmt.Errorf("%w: weight cannot be negative", ErrValidation)
	}
	return nil
}

func profileOf(u *models.User) *models.Profile {
	p := &models.Profile{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Age:        u.Age,
		HeightCm:   u.HeightCm,
		WeightKg:   u.WeightKg,
		Preference: u.Preference,
	}
	if bmi, err := wellness.CalculateBMI(u.HeightCm, u.WeightKg); err == nil {
		p.BMI = math.Round(bmi*10) / 10
		p.BMICategory = wellness.BMICategory(bmi)
	}
	return p
}

// storeError maps repository.ErrNotFound to ErrNotFound and wraps the rest.
func storeError(err error, op string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
