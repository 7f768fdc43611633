package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/Dias221467/Wellness_Tracker/internal/services"
	jwtutil "github.com/Dias221467/Wellness_Tracker/pkg/jwt"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationSocketHandler streams new notifications to the browser.
// Browsers cannot set headers on websocket requests, so the token comes in
// the query string.
type NotificationSocketHandler struct {
	Hub            *services.RealtimeHub
	JWTSecret      string
	AllowedOrigins []string

	upgrader websocket.Upgrader
}

func NewNotificationSocketHandler(hub *services.RealtimeHub, jwtSecret string, allowedOrigins []string) *NotificationSocketHandler {
	h := &NotificationSocketHandler{Hub: hub, JWTSecret: jwtSecret, AllowedOrigins: allowedOrigins}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

// checkOrigin accepts non-browser clients, same-origin pages and the CORS
// allow list. A "*" entry allows every origin.
func (h *NotificationSocketHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(strings.TrimSuffix(allowed, "/"), origin) {
			return true
		}
	}
	u, err := url.Parse(origin)
	return err == nil && strings.EqualFold(u.Host, r.Host)
}

// GET /ws?token=...
func (h *NotificationSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}
	claims, err := jwtutil.ValidateToken(token, h.JWTSecret)
	if err != nil {
		logrus.WithError(err).Warn("WebSocket auth failed")
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		logrus.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	client := &services.WSClient{UserID: userID, Conn: conn}
	h.Hub.Register(client)
	logrus.WithField("user_id", userID.Hex()).Info("WebSocket connected")

	defer func() {
		h.Hub.Unregister(client)
		logrus.WithField("user_id", userID.Hex()).Info("WebSocket disconnected")
	}()

	// The stream is server to client only; reading detects the disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
