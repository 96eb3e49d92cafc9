package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/usermgmt/identity-service/internal/api/metrics"
	"github.com/usermgmt/identity-service/internal/core/domain"
	"github.com/usermgmt/identity-service/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes identity events to a fixed set of workers using
// consistent hashing on the email, guaranteeing per-user event ordering.
// Publishing is best-effort: a full shard drops the event rather than
// blocking the request path.
type Dispatcher struct {
	workers []chan domain.IdentityEvent
	sink    ports.EventSink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.EventSink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.IdentityEvent, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.IdentityEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Publish enqueues an event on the worker responsible for its email. Never
// blocks: when the shard buffer is full the event is dropped and counted.
func (d *Dispatcher) Publish(event domain.IdentityEvent) {
	select {
	case d.workers[d.shardIndex(event.Email)] <- event:
		metrics.EventsPublishedTotal.WithLabelValues(string(event.EventType)).Inc()
	default:
		metrics.EventsDroppedTotal.Inc()
		d.log.Warn().
			Str("email", event.Email).
			Str("event_type", string(event.EventType)).
			Msg("event queue full, event dropped")
	}
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.IdentityEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sink.Deliver(ctx, event); err != nil {
				metrics.EventsDeliveryErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("email", event.Email).
					Str("event_type", string(event.EventType)).
					Int("worker_id", id).
					Msg("event delivery failed")
			}
		}
	}
}
