package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryAckStore keeps acknowledged reminders in process memory. The set is
// lost on restart, which only means reminders are reported as new again.
type MemoryAckStore struct {
	mu   sync.RWMutex
	acks map[primitive.ObjectID][]string
}

func NewMemoryAckStore() *MemoryAckStore {
	return &MemoryAckStore{acks: make(map[primitive.ObjectID][]string)}
}

func (m *MemoryAckStore) GetAcknowledged(_ context.Context, userID primitive.ObjectID) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.acks[userID]))
	copy(out, m.acks[userID])
	return out, nil
}

func (m *MemoryAckStore) SetAcknowledged(_ context.Context, userID primitive.ObjectID, reminders []string) error {
	stored := make([]string, len(reminders))
	copy(stored, reminders)

	m.mu.Lock()
	m.acks[userID] = stored
	m.mu.Unlock()
	return nil
}
