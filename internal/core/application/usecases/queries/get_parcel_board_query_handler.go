package queries

import (
	"context"
	"database/sql"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const parcelSelectColumns = `
	id,
	requester_id,
	deliverer_id,
	contact_name,
	contact_number,
	cost,
	paid,
	pickup_place,
	drop_off_place,
	deadline,
	status,
	created_at
`

// GetParcelBoardQueryHandler retrieves the public parcel board.
//
// Example:
//
//	handler := NewGetParcelBoardQueryHandler(db)
//	query := NewGetParcelBoardQuery()
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to load the board: %v", err)
//	    return err
//	}
type GetParcelBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelBoardQueryHandler creates a handler for board queries.
// Requires a GORM database connection for query execution.
func NewGetParcelBoardQueryHandler(db *gorm.DB) GetParcelBoardQueryHandler {
	return GetParcelBoardQueryHandler{db: db}
}

// Handle executes the query to retrieve every parcel on the board,
// newest first. Claimed and delivered parcels stay visible so the
// community sees the full state of the board.
func (h GetParcelBoardQueryHandler) Handle(
	ctx context.Context,
	query GetParcelBoardQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + parcelSelectColumns + `
		FROM parcels
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParcelRows(rows)
}

func scanParcelRows(rows *sql.Rows) ([]ParcelResponse, error) {
	parcels := make([]ParcelResponse, 0)

	for rows.Next() {
		var (
			resp      ParcelResponse
			id        uuid.UUID
			deliverer sql.NullString
			status    int
			deadline  time.Time
			createdAt time.Time
		)

		err := rows.Scan(
			&id,
			&resp.Requester,
			&deliverer,
			&resp.ContactName,
			&resp.ContactNumber,
			&resp.Cost,
			&resp.Paid,
			&resp.PickupPlace,
			&resp.DropOffPlace,
			&deadline,
			&status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = parcelID
		resp.Deliverer = deliverer.String
		resp.Status = parcel.Status(status)
		resp.Deadline = deadline
		resp.CreatedAt = createdAt

		parcels = append(parcels, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
