package feed

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event is one entry on the back-office activity feed.
type Event struct {
	Kind      string    `json:"kind"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// client wraps a connection with its write lock. gorilla allows only one
// concurrent writer per connection, and Publish runs on whatever request
// goroutine triggered it.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *client) close() {
	_ = c.conn.Close()
}

// Hub fans activity events out to connected admin dashboards. One
// connection per user; a reconnect replaces the old socket.
type Hub struct {
	clients map[string]*client
	mutex   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*client),
	}
}

func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.clients[userID]; exists && old != nil {
		old.close()
	}

	h.clients[userID] = &client{conn: conn}
}

func (h *Hub) Unregister(userID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if c, exists := h.clients[userID]; exists && c != nil {
		c.close()
		delete(h.clients, userID)
	}
}

// Publish broadcasts an event to every connected dashboard. Dead
// connections are dropped on write failure.
func (h *Hub) Publish(kind string, payload any) {
	event := Event{Kind: kind, Payload: payload, Timestamp: time.Now()}

	h.mutex.RLock()
	targets := make(map[string]*client, len(h.clients))
	for id, c := range h.clients {
		targets[id] = c
	}
	h.mutex.RUnlock()

	for userID, c := range targets {
		if c == nil {
			continue
		}
		if err := c.writeJSON(event); err != nil {
			log.Printf("feed: dropping connection user_id=%s error=%v", userID, err)
			h.Unregister(userID)
		}
	}
}

func (h *Hub) ConnectedCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.clients)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, c := range h.clients {
		if c != nil {
			c.close()
		}
		delete(h.clients, userID)
	}
}
