package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityRecorder stores when a user was last seen.
type ActivityRecorder interface {
	UpdateLastActive(ctx context.Context, userID primitive.ObjectID) error
}

// ActivityTracker stamps the caller's last activity, at most once per user
// per interval. Recording never fails the request.
type ActivityTracker struct {
	recorder ActivityRecorder
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	recorded map[primitive.ObjectID]time.Time
}

func NewActivityTracker(recorder ActivityRecorder, interval time.Duration) *ActivityTracker {
	return &ActivityTracker{
		recorder: recorder,
		interval: interval,
		now:      time.Now,
		recorded: make(map[primitive.ObjectID]time.Time),
	}
}

// due reports whether userID should be written now and, if so, reserves the slot.
func (t *ActivityTracker) due(userID primitive.ObjectID) bool {
	now := t.now()
	t.mu.Lock()
	defer t.mu.Unlock()
	if last, ok := t.recorded[userID]; ok && now.Sub(last) < t.interval {
		return false
	}
	t.recorded[userID] = now
	return true
}

// Middleware must run after AuthMiddleware; anonymous requests pass through.
func (t *ActivityTracker) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims := GetUserFromContext(r.Context()); claims != nil {
			if userID, err := primitive.ObjectIDFromHex(claims.UserID); err == nil && t.due(userID) {
				if err := t.recorder.UpdateLastActive(r.Context(), userID); err != nil {
					logrus.WithError(err).WithField("user_id", claims.UserID).Warn("Failed to record last activity")
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
