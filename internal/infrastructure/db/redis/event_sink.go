package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/usermgmt/identity-service/internal/core/domain"
)

const defaultEventChannel = "identity.events"

// EventSink publishes identity lifecycle events on a Redis pub/sub channel.
// Subscribers are external; delivery offers no acknowledgment.
type EventSink struct {
	client  *redis.Client
	channel string
}

func NewEventSink(client *redis.Client, channel string) *EventSink {
	if channel == "" {
		channel = defaultEventChannel
	}
	return &EventSink{client: client, channel: channel}
}

// Deliver serializes the event and publishes it on the channel.
func (s *EventSink) Deliver(ctx context.Context, event domain.IdentityEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := s.client.Publish(ctx, s.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}
