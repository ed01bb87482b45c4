package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{}) {}
func (nopLogger) Warn(module, message string, details map[string]interface{}) {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}

func (nopLogger) Sync() error { return nil }

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func TestBroadcastDropsSlowConsumer(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	slow := &Client{Hub: hub, Send: make(chan []byte, 1)}
	slow.Send <- []byte("backlog") // buffer full, next send would block
	hub.register <- slow

	assert.Eventually(t, func() bool { return hub.clientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Broadcast("catalog_updated", map[string]interface{}{"rooms": 1})

	assert.Eventually(t, func() bool { return hub.clientCount() == 0 }, time.Second, 10*time.Millisecond)

	// The dropped client's channel is closed exactly once; broadcasting
	// again must not panic the hub.
	hub.Broadcast("catalog_updated", map[string]interface{}{"rooms": 2})

	_, open := <-slow.Send // drain the backlog entry
	assert.True(t, open)
	_, open = <-slow.Send
	assert.False(t, open)
}
