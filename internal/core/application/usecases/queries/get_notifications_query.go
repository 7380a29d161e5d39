package queries

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetNotificationsQueryIsNotConstructed = errors.New(
		"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
	)
)

// GetNotificationsQuery retrieves the caller's notification log.
type GetNotificationsQuery struct {
	recipient kernel.Identity

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for the caller's notifications.
// Validates the recipient identity.
func NewGetNotificationsQuery(recipient kernel.Identity) (GetNotificationsQuery, error) {
	if err := recipient.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}

	return GetNotificationsQuery{
		recipient: recipient,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNotificationsQueryIsNotConstructed if validation fails.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// Recipient returns the identity whose notifications are being listed.
func (q GetNotificationsQuery) Recipient() kernel.Identity {
	return q.recipient
}

// NotificationResponse represents one notification row.
type NotificationResponse struct {
	ID        kernel.UUID
	Message   string
	ParcelID  kernel.UUID
	Actor     string
	IsRead    bool
	CreatedAt time.Time
}
