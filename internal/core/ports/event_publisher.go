package ports

import (
	"context"
	"time"
)

// DeliveryEvent describes a committed parcel lifecycle transition for
// downstream consumers (analytics, chat bots, audit).
type DeliveryEvent struct {
	ParcelID   string    `json:"parcel_id"`
	Action     string    `json:"action"`
	Actor      string    `json:"actor"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes delivery lifecycle events after the transition
// has been committed. Publishing is best-effort: a failure is logged by the
// caller and never affects the outcome of the transition.
type EventPublisher interface {
	PublishDeliveryEvent(ctx context.Context, event DeliveryEvent) error
	Close() error
}
