package queries

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetFeedbackQueryIsNotConstructed = errors.New(
		"GetFeedbackQuery must be created via NewGetFeedbackQuery constructor",
	)
)

// GetFeedbackQuery retrieves the community feedback board.
type GetFeedbackQuery struct {
	guard guard.ConstructorGuard
}

// NewGetFeedbackQuery creates a query to retrieve all feedback entries.
// This is a parameterless query.
func NewGetFeedbackQuery() GetFeedbackQuery {
	return GetFeedbackQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFeedbackQueryIsNotConstructed if validation fails.
func (q GetFeedbackQuery) Validate() error {
	return q.guard.Validate(ErrGetFeedbackQueryIsNotConstructed)
}

// FeedbackResponse represents one feedback entry.
type FeedbackResponse struct {
	ID        kernel.UUID
	Author    string
	Text      string
	CreatedAt time.Time
}
