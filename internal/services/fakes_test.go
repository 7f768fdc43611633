package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Dias221467/Wellness_Tracker/internal/models"
	"github.com/Dias221467/Wellness_Tracker/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStore = errors.New("store unavailable")

type fakeUsers struct {
	users      map[primitive.ObjectID]*models.User
	lastActive map[primitive.ObjectID]time.Time
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[primitive.ObjectID]*models.User{}, lastActive: map[primitive.ObjectID]time.Time{}}
}

func (f *fakeUsers) CreateUser(_ context.Context, u *models.User) (*models.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return nil, repository.ErrDuplicate
		}
	}
	u.ID = primitive.NewObjectID()
	cp := *u
	f.users[u.ID] = &cp
	return u, nil
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, u *models.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUsers) UpdateLastActive(_ context.Context, id primitive.ObjectID, at time.Time) error {
	f.lastActive[id] = at
	return nil
}

func (f *fakeUsers) GetAllUsers(context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (f *fakeUsers) add(email string) models.User {
	u := &models.User{ID: primitive.NewObjectID(), Name: email, Email: email}
	f.users[u.ID] = u
	return *u
}

// fakeLogs implements WorkoutStore, FoodStore and MoodStore.
type fakeLogs struct {
	workouts []models.Workout
	foods    []models.Food
	moods    []models.MoodEntry
	err      error
}

func (f *fakeLogs) CreateWorkout(_ context.Context, w *models.Workout) (*models.Workout, error) {
	if f.err != nil {
		return nil, f.err
	}
	w.ID = primitive.NewObjectID()
	f.workouts = append(f.workouts, *w)
	return w, nil
}

func (f *fakeLogs) ListWorkouts(_ context.Context, userID primitive.ObjectID, since time.Time) ([]models.Workout, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Workout{}
	for _, w := range f.workouts {
		if w.UserID == userID && !w.Date.Before(since) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeLogs) DeleteWorkout(_ context.Context, id, userID primitive.ObjectID) error {
	for i, w := range f.workouts {
		if w.ID == id && w.UserID == userID {
			f.workouts = append(f.workouts[:i], f.workouts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeLogs) CreateFood(_ context.Context, food *models.Food) (*models.Food, error) {
	if f.err != nil {
		return nil, f.err
	}
	food.ID = primitive.NewObjectID()
	f.foods = append(f.foods, *food)
	return food, nil
}

func (f *fakeLogs) ListFoods(_ context.Context, userID primitive.ObjectID, since time.Time) ([]models.Food, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Food{}
	for _, food := range f.foods {
		if food.UserID == userID && !food.Date.Before(since) {
			out = append(out, food)
		}
	}
	return out, nil
}

func (f *fakeLogs) DeleteFood(_ context.Context, id, userID primitive.ObjectID) error {
	for i, food := range f.foods {
		if food.ID == id && food.UserID == userID {
			f.foods = append(f.foods[:i], f.foods[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeLogs) CreateMood(_ context.Context, m *models.MoodEntry) (*models.MoodEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	m.ID = primitive.NewObjectID()
	f.moods = append(f.moods, *m)
	return m, nil
}

func (f *fakeLogs) ListMoods(_ context.Context, userID primitive.ObjectID, since time.Time) ([]models.MoodEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.MoodEntry{}
	for _, m := range f.moods {
		if m.UserID == userID && !m.Date.Before(since) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeLogs) DeleteMood(_ context.Context, id, userID primitive.ObjectID) error {
	for i, m := range f.moods {
		if m.ID == id && m.UserID == userID {
			f.moods = append(f.moods[:i], f.moods[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeGoals struct {
	goals     []models.Goal
	updates   map[primitive.ObjectID]bool
	updateErr error
}

func newFakeGoals(goals ...models.Goal) *fakeGoals {
	return &fakeGoals{goals: goals, updates: map[primitive.ObjectID]bool{}}
}

func (f *fakeGoals) CreateGoal(_ context.Context, g *models.Goal) (*models.Goal, error) {
	g.ID = primitive.NewObjectID()
	f.goals = append(f.goals, *g)
	return g, nil
}

func (f *fakeGoals) GetGoalsByUser(_ context.Context, userID primitive.ObjectID) ([]models.Goal, error) {
	out := []models.Goal{}
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGoals) UpdateGoalCompletion(_ context.Context, id primitive.ObjectID, completed bool) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.goals {
		if f.goals[i].ID == id {
			f.goals[i].Completed = completed
			f.updates[id] = completed
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeGoals) DeleteGoal(_ context.Context, id, userID primitive.ObjectID) error {
	for i, g := range f.goals {
		if g.ID == id && g.UserID == userID {
			f.goals = append(f.goals[:i], f.goals[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeNotifications struct {
	items []models.Notification
}

func (f *fakeNotifications) CreateNotification(_ context.Context, n *models.Notification) error {
	n.ID = primitive.NewObjectID()
	n.ExpiresAt = n.CreatedAt.Add(repository.NotificationTTL)
	f.items = append(f.items, *n)
	return nil
}

func (f *fakeNotifications) GetUserNotifications(_ context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	out := []models.Notification{}
	for _, n := range f.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotifications) MarkAsRead(_ context.Context, id, userID primitive.ObjectID) error {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			f.items[i].Read = true
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeNotifications) DeleteNotification(_ context.Context, id, userID primitive.ObjectID) error {
	for i, n := range f.items {
		if n.ID == id && n.UserID == userID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeNotifications) GetLatestNotificationByType(_ context.Context, userID primitive.ObjectID, notifType string) (*models.Notification, error) {
	var latest *models.Notification
	for i := range f.items {
		n := f.items[i]
		if n.UserID == userID && n.Type == notifType && (latest == nil || n.CreatedAt.After(latest.CreatedAt)) {
			latest = &n
		}
	}
	if latest == nil {
		return nil, repository.ErrNotFound
	}
	return latest, nil
}

func (f *fakeNotifications) DeleteExpiredNotifications(_ context.Context, now time.Time) (int64, error) {
	kept := f.items[:0]
	var deleted int64
	for _, n := range f.items {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		} else {
			deleted++
		}
	}
	f.items = kept
	return deleted, nil
}

type sentMessage struct {
	userID  primitive.ObjectID
	payload interface{}
}

type fakeHub struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (h *fakeHub) Send(userID primitive.ObjectID, payload interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sent = append(h.sent, sentMessage{userID, payload})
}

type fakeMailer struct {
	to []string
}

func (m *fakeMailer) SendEmail(to, _, _ string) error {
	m.to = append(m.to, to)
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
