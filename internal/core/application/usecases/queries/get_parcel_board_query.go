// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return flat response structs, bypassing the
// aggregates and their invariant checks.
package queries

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetParcelBoardQueryIsNotConstructed = errors.New(
		"GetParcelBoardQuery must be created via NewGetParcelBoardQuery constructor",
	)
)

// GetParcelBoardQuery retrieves every parcel on the community board.
//
// Example:
//
//	query := NewGetParcelBoardQuery()
//	handler := NewGetParcelBoardQueryHandler(db)
//
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load the board: %w", err)
//	}
//	fmt.Printf("%d parcels on the board\n", len(board))
type GetParcelBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetParcelBoardQuery creates a query to retrieve the parcel board.
// This is a parameterless query that fetches every parcel, newest first.
func NewGetParcelBoardQuery() GetParcelBoardQuery {
	return GetParcelBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelBoardQueryIsNotConstructed if validation fails.
func (q GetParcelBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelBoardQueryIsNotConstructed)
}

// ParcelResponse represents one parcel row as rendered to callers.
// Shared by the board, my-parcels and my-deliveries queries.
type ParcelResponse struct {
	ID            kernel.UUID
	Requester     string
	Deliverer     string
	ContactName   string
	ContactNumber string
	Cost          int
	Paid          bool
	PickupPlace   string
	DropOffPlace  string
	Deadline      time.Time
	Status        parcel.Status
	CreatedAt     time.Time
}
