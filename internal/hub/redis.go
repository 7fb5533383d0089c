package hub

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
)

// DefaultChannel is the Redis channel friend events travel on.
const DefaultChannel = "geomate:events"

type relayMessage struct {
	User  string              `json:"user"`
	Event jsoniter.RawMessage `json:"event"`
}

// RedisRelay fans events out to every server instance over Redis pub/sub.
type RedisRelay struct {
	client  *redis.Client
	channel string
}

// NewRedisRelay connects to the Redis server at url.
func NewRedisRelay(url string) (*RedisRelay, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisRelay{client: redis.NewClient(opts), channel: DefaultChannel}, nil
}

// Publish implements Relay.
func (r *RedisRelay) Publish(ctx context.Context, userName string, message []byte) error {
	payload, err := jsoniter.Marshal(relayMessage{User: userName, Event: message})
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, r.channel, payload).Err()
}

// Run delivers relayed events to h until ctx is done.
func (r *RedisRelay) Run(ctx context.Context, h *Hub) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", r.channel, err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var m relayMessage
			if err := jsoniter.UnmarshalFromString(msg.Payload, &m); err != nil {
				log.Printf("hub: drop malformed relay message: %v", err)
				continue
			}
			h.Deliver(m.User, m.Event)
		}
	}
}

// Close closes the Redis connection.
func (r *RedisRelay) Close() error {
	return r.client.Close()
}
