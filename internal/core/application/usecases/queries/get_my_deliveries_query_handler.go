package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMyDeliveriesQueryHandler retrieves parcels carried by the caller,
// both in progress and already delivered.
type GetMyDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetMyDeliveriesQueryHandler creates a handler for my-deliveries queries.
func NewGetMyDeliveriesQueryHandler(db *gorm.DB) GetMyDeliveriesQueryHandler {
	return GetMyDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve everything the caller carries,
// newest first.
func (h GetMyDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetMyDeliveriesQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelSelectColumns+`
		FROM parcels
		WHERE deliverer_id = ?
		ORDER BY created_at DESC
	`, query.Deliverer().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcelRows(rows)
}
