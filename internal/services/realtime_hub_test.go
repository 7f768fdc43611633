package services

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	closed   bool
	fail     bool
	deadline time.Time
}

func (c *fakeConn) SetWriteDeadline(t time.Time) error {
	c.deadline = t
	return nil
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("broken pipe")
	}
	c.messages = append(c.messages, data)
	return nil
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func TestRealtimeHubSend(t *testing.T) {
	hub := NewRealtimeHub()
	alice, bob := primitive.NewObjectID(), primitive.NewObjectID()
	a1, a2, b1 := &fakeConn{}, &fakeConn{fail: true}, &fakeConn{}
	hub.Register(&WSClient{UserID: alice, Conn: a1})
	hub.Register(&WSClient{UserID: alice, Conn: a2})
	hub.Register(&WSClient{UserID: bob, Conn: b1})

	hub.Send(alice, map[string]string{"title": "Reminder: Log Meals"})

	require.Len(t, a1.messages, 1)
	var got map[string]string
	require.NoError(t, json.Unmarshal(a1.messages[0], &got))
	assert.Equal(t, "Reminder: Log Meals", got["title"])
	assert.Empty(t, b1.messages)
	assert.False(t, a1.deadline.IsZero())

	// The failed connection is dropped and closed.
	assert.Equal(t, 1, hub.Connected(alice))
	assert.True(t, a2.closed)
}

// stalledConn never completes a write on its own: it waits out the write
// deadline, like a peer that stopped reading.
type stalledConn struct {
	deadline time.Time
	closed   bool
}

func (c *stalledConn) SetWriteDeadline(t time.Time) error {
	c.deadline = t
	return nil
}

func (c *stalledConn) WriteMessage(int, []byte) error {
	if c.deadline.IsZero() {
		select {}
	}
	time.Sleep(time.Until(c.deadline))
	return errors.New("i/o timeout")
}

func (c *stalledConn) Close() error {
	c.closed = true
	return nil
}

func TestRealtimeHubSendStalledClient(t *testing.T) {
	hub := NewRealtimeHub()
	hub.writeWait = 20 * time.Millisecond
	userID := primitive.NewObjectID()
	conn := &stalledConn{}
	hub.Register(&WSClient{UserID: userID, Conn: conn})

	done := make(chan struct{})
	go func() {
		hub.Send(userID, "ping")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Send did not return for a stalled client")
	}
	assert.True(t, conn.closed)
	assert.Zero(t, hub.Connected(userID))
}

func TestRealtimeHubUnregister(t *testing.T) {
	hub := NewRealtimeHub()
	userID := primitive.NewObjectID()
	conn := &fakeConn{}
	client := &WSClient{UserID: userID, Conn: conn}
	hub.Register(client)

	hub.Unregister(client)
	hub.Send(userID, "ignored")

	assert.True(t, conn.closed)
	assert.Zero(t, hub.Connected(userID))
	assert.Empty(t, conn.messages)
}
