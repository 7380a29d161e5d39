// Package notification provides the Notification entity: a one-way message
// to exactly one community member, created as a side effect of a parcel
// lifecycle transition (or the overdue reminder job) and never deleted by
// the core.
package notification

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance
// was not created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification",
)

// Notification is a one-way message to a single recipient about a parcel.
// It records who triggered it and when, and carries a read flag the
// recipient may flip. The text itself is composed by the notification
// composer in the services package; this entity only stores it.
type Notification struct {
	id        kernel.UUID
	recipient kernel.Identity
	message   string
	parcelID  kernel.UUID
	actor     kernel.Identity
	createdAt time.Time
	isRead    bool

	isConstructed bool
}

// NewNotification creates an unread notification with validation.
//
// Parameters:
//   - id: Unique identifier for the notification
//   - recipient: Identity the message is addressed to
//   - message: Human-readable message text (required)
//   - parcelID: The parcel this notification refers to
//   - actor: Identity whose action triggered the notification
//   - createdAt: Creation timestamp (must be non-zero)
func NewNotification(
	id kernel.UUID,
	recipient kernel.Identity,
	message string,
	parcelID kernel.UUID,
	actor kernel.Identity,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setRecipient(recipient),
		n.setMessage(message),
		n.setParcelID(parcelID),
		n.setActor(actor),
		n.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a notification from persistence,
// including its read state.
func RestoreNotification(
	id kernel.UUID,
	recipient kernel.Identity,
	message string,
	parcelID kernel.UUID,
	actor kernel.Identity,
	createdAt time.Time,
	isRead bool,
) (*Notification, error) {
	n, err := NewNotification(id, recipient, message, parcelID, actor, createdAt)
	if err != nil {
		return nil, err
	}

	n.isRead = isRead
	return n, nil
}

// Validate ensures the Notification was created through a factory method.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// Recipient returns the identity the notification is addressed to.
func (n *Notification) Recipient() kernel.Identity {
	return n.recipient
}

// Message returns the human-readable message text.
func (n *Notification) Message() string {
	return n.message
}

// ParcelID returns the identifier of the parcel the notification refers to.
func (n *Notification) ParcelID() kernel.UUID {
	return n.parcelID
}

// Actor returns the identity whose action triggered the notification.
func (n *Notification) Actor() kernel.Identity {
	return n.actor
}

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// IsRead reports whether the recipient has read the notification.
func (n *Notification) IsRead() bool {
	return n.isRead
}

// MarkRead flips the read flag. Only the recipient may read their own
// notifications; any other caller is rejected.
func (n *Notification) MarkRead(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if !caller.IsEqual(n.recipient) {
		return errs.NewOperationForbiddenError("markRead", "only the recipient may mark a notification read")
	}

	n.isRead = true
	return nil
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setRecipient(recipient kernel.Identity) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	n.recipient = recipient
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *Notification) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	n.parcelID = parcelID
	return nil
}

func (n *Notification) setActor(actor kernel.Identity) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	n.actor = actor
	return nil
}

func (n *Notification) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	n.createdAt = createdAt
	return nil
}
