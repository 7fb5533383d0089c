package hub

import (
	"context"
	"errors"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesOnlyNamedUsers(t *testing.T) {
	h := NewHub()
	alice, bob, carol := make(Client, 1), make(Client, 1), make(Client, 1)
	h.Subscribe("alice", alice)
	h.Subscribe("bob", bob)
	h.Subscribe("carol", carol)

	h.Publish(context.Background(), Event{Type: EventRequestSent, Payload: map[string]string{"id": "REQ-1"}}, "alice", "bob")

	for _, c := range []Client{alice, bob} {
		select {
		case msg := <-c:
			assert.Equal(t, EventRequestSent, jsoniter.Get(msg, "type").ToString())
			assert.Equal(t, "REQ-1", jsoniter.Get(msg, "payload", "id").ToString())
		default:
			t.Fatal("expected a message")
		}
	}
	assert.Len(t, carol, 0)
}

func TestUnsubscribeClosesClient(t *testing.T) {
	h := NewHub()
	c := make(Client, 1)
	h.Subscribe("alice", c)
	h.Unsubscribe("alice", c)

	_, open := <-c
	assert.False(t, open)
	assert.Empty(t, h.users)

	// Publishing to a user without clients is a no-op.
	h.Publish(context.Background(), Event{Type: EventFriendRemoved}, "alice")
}

func TestSlowClientDoesNotBlock(t *testing.T) {
	h := NewHub()
	c := make(Client) // unbuffered, nobody reading
	h.Subscribe("alice", c)

	h.Publish(context.Background(), Event{Type: EventFriendRemoved}, "alice")
}

type loopbackRelay struct {
	hub  *Hub
	fail bool
	sent []string
}

func (r *loopbackRelay) Publish(_ context.Context, userName string, message []byte) error {
	if r.fail {
		return errors.New("relay down")
	}
	r.sent = append(r.sent, userName)
	r.hub.Deliver(userName, message)
	return nil
}

func TestPublishGoesThroughRelay(t *testing.T) {
	h := NewHub()
	relay := &loopbackRelay{hub: h}
	h.SetRelay(relay)

	c := make(Client, 2)
	h.Subscribe("alice", c)

	h.Publish(context.Background(), Event{Type: EventRequestAccepted}, "alice")
	require.Len(t, c, 1)
	assert.Equal(t, []string{"alice"}, relay.sent)

	// A failing relay falls back to local delivery.
	relay.fail = true
	h.Publish(context.Background(), Event{Type: EventRequestRejected}, "alice")
	assert.Len(t, c, 2)
}

// stoppableRelay loops events back until Run is told to stop.
type stoppableRelay struct {
	loopbackRelay
	stop chan error
}

func (r *stoppableRelay) Run(ctx context.Context, _ *Hub) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-r.stop:
		return err
	}
}

func TestRunRelayFallsBackWhenReceivingStops(t *testing.T) {
	h := NewHub()
	relay := &stoppableRelay{loopbackRelay: loopbackRelay{hub: h}, stop: make(chan error)}

	done := make(chan error, 1)
	go func() { done <- h.RunRelay(context.Background(), relay) }()

	c := make(Client, 2)
	h.Subscribe("alice", c)

	require.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		return h.relay != nil
	}, time.Second, 5*time.Millisecond)

	h.Publish(context.Background(), Event{Type: EventRequestSent}, "alice")
	require.Len(t, c, 1)
	assert.Equal(t, []string{"alice"}, relay.sent)

	relay.stop <- errors.New("connection reset")
	require.EqualError(t, <-done, "connection reset")

	// The relay would still accept publishes, but nobody receives them.
	h.Publish(context.Background(), Event{Type: EventRequestAccepted}, "alice")
	assert.Len(t, c, 2)
	assert.Equal(t, []string{"alice"}, relay.sent)
}
