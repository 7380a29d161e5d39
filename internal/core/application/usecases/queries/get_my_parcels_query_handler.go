package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMyParcelsQueryHandler retrieves the caller's own posted parcels.
type GetMyParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetMyParcelsQueryHandler creates a handler for my-parcels queries.
func NewGetMyParcelsQueryHandler(db *gorm.DB) GetMyParcelsQueryHandler {
	return GetMyParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve all parcels posted by the requester,
// newest first.
func (h GetMyParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetMyParcelsQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelSelectColumns+`
		FROM parcels
		WHERE requester_id = ?
		ORDER BY created_at DESC
	`, query.Requester().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcelRows(rows)
}
