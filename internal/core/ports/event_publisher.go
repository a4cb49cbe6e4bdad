package ports

import (
	"context"
)

// EventPublisher publishes domain events to the message broker. The event is
// serialized by the adapter; publishing failures must not abort the business
// transaction that produced the event.
type EventPublisher interface {
	// Publish serializes the event and delivers it on the given topic.
	Publish(ctx context.Context, topic string, event any) error
}
