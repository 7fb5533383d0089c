package hub

import (
	"context"
	"log"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

// Friend event types.
const (
	EventRequestSent      = "friend_request.sent"
	EventRequestAccepted  = "friend_request.accepted"
	EventRequestRejected  = "friend_request.rejected"
	EventRequestCancelled = "friend_request.cancelled"
	EventFriendRemoved    = "friend.removed"
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client represents a single client connection (one SSE stream of a user).
// It's essentially a channel that the SSE handler will listen to.
type Client chan []byte

// Relay forwards encoded events to every instance, including this one.
type Relay interface {
	Publish(ctx context.Context, userName string, message []byte) error
}

// ReceivingRelay is a Relay that also hands relayed events back to a hub
// until ctx is done or the connection fails.
type ReceivingRelay interface {
	Relay
	Run(ctx context.Context, h *Hub) error
}

// Hub manages all connected users and their clients.
type Hub struct {
	users map[string]map[Client]bool
	mu    sync.RWMutex
	relay Relay
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		users: make(map[string]map[Client]bool),
	}
}

// SetRelay routes Publish through r. Events then reach local clients when r
// delivers them back via Deliver.
func (h *Hub) SetRelay(r Relay) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.relay = r
}

// RunRelay routes Publish through r while r receives. Once r stops
// receiving, Publish falls back to local delivery.
func (h *Hub) RunRelay(ctx context.Context, r ReceivingRelay) error {
	h.SetRelay(r)
	defer h.clearRelay(r)
	return r.Run(ctx, h)
}

func (h *Hub) clearRelay(r Relay) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.relay == r {
		h.relay = nil
	}
}

// Subscribe adds a new client for a user.
func (h *Hub) Subscribe(userName string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.users[userName]; !ok {
		h.users[userName] = make(map[Client]bool)
	}
	h.users[userName][client] = true
}

// Unsubscribe removes a client of a user.
func (h *Hub) Unsubscribe(userName string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.users[userName]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client) // Close the channel to signal the SSE handler to stop.
			if len(clients) == 0 {
				delete(h.users, userName)
			}
		}
	}
}

// Publish sends an event to every client of the given users.
func (h *Hub) Publish(ctx context.Context, event Event, userNames ...string) {
	messageBytes, err := jsoniter.Marshal(event)
	if err != nil {
		log.Printf("hub: encode %s: %v", event.Type, err)
		return
	}

	h.mu.RLock()
	relay := h.relay
	h.mu.RUnlock()

	for _, userName := range userNames {
		if relay != nil {
			err := relay.Publish(ctx, userName, messageBytes)
			if err == nil {
				continue
			}
			log.Printf("hub: relay %s to %s: %v", event.Type, userName, err)
		}
		h.Deliver(userName, messageBytes)
	}
}

// Deliver hands an encoded event to the local clients of a user.
func (h *Hub) Deliver(userName string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.users[userName] {
		// Use a non-blocking send to prevent a slow client from blocking the hub.
		select {
		case client <- message:
		default:
			// Client channel is full; the SSE handler unsubscribes on disconnect.
		}
	}
}

// Subscribers reports how many clients a user has connected.
func (h *Hub) Subscribers(userName string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userName])
}
