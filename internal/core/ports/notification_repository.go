package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the
// append-only per-recipient notification log. The core writes notifications
// and flips read flags; it never deletes them.
type NotificationRepository interface {
	// Add appends a notification to the log.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	// Returns an error unwrapping to errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// Update persists a change to an existing notification (read flag only).
	Update(ctx context.Context, aggregate *notification.Notification) error
}
