// Package notificationrepo provides data transfer objects and mapping functions
// for notification persistence.
package notificationrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting notifications.
// Indexed by recipient so per-member listings stay cheap as the log grows.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID string    `gorm:"type:text;index;not null"`
	Message     string    `gorm:"type:text;not null"`
	ParcelID    uuid.UUID `gorm:"type:uuid;index"`
	ActorID     string    `gorm:"type:text;not null"`
	IsRead      bool
	CreatedAt   time.Time
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          aggregate.ID().Bytes(),
		RecipientID: aggregate.Recipient().String(),
		Message:     aggregate.Message(),
		ParcelID:    aggregate.ParcelID().Bytes(),
		ActorID:     aggregate.Actor().String(),
		IsRead:      aggregate.IsRead(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	recipient, err := kernel.NewIdentity(dto.RecipientID)
	if err != nil {
		return nil, err
	}

	actor, err := kernel.NewIdentity(dto.ActorID)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id, recipient, dto.Message, parcelID, actor, dto.CreatedAt, dto.IsRead)
}
