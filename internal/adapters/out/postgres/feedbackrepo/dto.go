// Package feedbackrepo provides data transfer objects and mapping functions
// for feedback persistence.
package feedbackrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/feedback"
	"parcelhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FeedbackDTO represents the database structure for persisting feedback entries.
type FeedbackDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthorID  string    `gorm:"type:text;not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName specifies the database table name for feedback entities.
func (FeedbackDTO) TableName() string {
	return "feedbacks"
}

func fromDomain(aggregate *feedback.Feedback) FeedbackDTO {
	return FeedbackDTO{
		ID:        aggregate.ID().Bytes(),
		AuthorID:  aggregate.Author().String(),
		Text:      aggregate.Text(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto FeedbackDTO) (*feedback.Feedback, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	author, err := kernel.NewIdentity(dto.AuthorID)
	if err != nil {
		return nil, err
	}

	return feedback.RestoreFeedback(id, author, dto.Text, dto.CreatedAt)
}
