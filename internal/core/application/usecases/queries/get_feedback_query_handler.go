package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFeedbackQueryHandler retrieves the community feedback board.
type GetFeedbackQueryHandler struct {
	db *gorm.DB
}

// NewGetFeedbackQueryHandler creates a handler for feedback queries.
func NewGetFeedbackQueryHandler(db *gorm.DB) GetFeedbackQueryHandler {
	return GetFeedbackQueryHandler{db: db}
}

// Handle executes the query to retrieve all feedback entries, newest first.
func (h GetFeedbackQueryHandler) Handle(
	ctx context.Context,
	query GetFeedbackQuery,
) ([]FeedbackResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			author_id,
			text,
			created_at
		FROM feedbacks
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedback := make([]FeedbackResponse, 0)

	for rows.Next() {
		var (
			resp FeedbackResponse
			id   uuid.UUID
		)

		err = rows.Scan(
			&id,
			&resp.Author,
			&resp.Text,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		feedbackID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = feedbackID

		feedback = append(feedback, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return feedback, nil
}
