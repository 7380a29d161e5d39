package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/feedback"
)

// FeedbackRepository defines the persistence contract for the community
// feedback board. Feedback is append-only.
type FeedbackRepository interface {
	// Add persists a new feedback entry.
	Add(ctx context.Context, aggregate *feedback.Feedback) error
}
