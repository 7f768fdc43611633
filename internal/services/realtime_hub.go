package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WSConn is the part of *websocket.Conn the hub writes to.
type WSConn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// DefaultWriteWait bounds a single push to one connection.
const DefaultWriteWait = 10 * time.Second

type WSClient struct {
	UserID primitive.ObjectID
	Conn   WSConn

	writeMu sync.Mutex
}

func (c *WSClient) write(msg []byte, wait time.Duration) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.Conn.SetWriteDeadline(time.Now().Add(wait)); err != nil {
		return err
	}
	return c.Conn.WriteMessage(websocket.TextMessage, msg)
}

// RealtimeHub fans notifications out to every open connection of a user.
type RealtimeHub struct {
	mu        sync.RWMutex
	clients   map[primitive.ObjectID]map[*WSClient]struct{}
	writeWait time.Duration
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{
		clients:   make(map[primitive.ObjectID]map[*WSClient]struct{}),
		writeWait: DefaultWriteWait,
	}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Connected returns the number of open connections for userID.
func (h *RealtimeHub) Connected(userID primitive.ObjectID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Send marshals payload once and writes it to all of the user's clients.
// A client whose write fails or times out is dropped, so a peer that stopped
// reading costs at most writeWait.
func (h *RealtimeHub) Send(userID primitive.ObjectID, payload interface{}) {
	msg, err := json.Marshal(payload)
	if err != nil {
		logrus.WithError(err).Error("Failed to marshal realtime payload")
		return
	}

	h.mu.RLock()
	targets := make([]*WSClient, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.write(msg, h.writeWait); err != nil {
			logrus.WithError(err).WithField("user_id", userID.Hex()).Warn("Failed to push notification, dropping connection")
			h.Unregister(c)
		}
	}
}
