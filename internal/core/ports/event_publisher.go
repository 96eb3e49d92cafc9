package ports

import (
	"context"

	"github.com/usermgmt/identity-service/internal/core/domain"
)

// EventPublisher hands an identity lifecycle event to the messaging layer.
// Publish must not block beyond enqueue time and must never fail the caller;
// delivery is best-effort.
type EventPublisher interface {
	Publish(event domain.IdentityEvent)
}

// EventSink delivers a single event to the external transport. Implemented by
// the Redis pub/sub sink; consumed by the dispatcher workers.
type EventSink interface {
	Deliver(ctx context.Context, event domain.IdentityEvent) error
}
