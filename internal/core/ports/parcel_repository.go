package ports

import (
	"context"
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
)

// ErrPreconditionNotMatched is returned by UpdateConditional when the stored
// parcel no longer matches the expected pre-state, i.e. a concurrent writer
// transitioned the parcel first. Callers must treat this as a lost race and
// report a conflict instead of re-deriving success from stale in-memory state.
var ErrPreconditionNotMatched = errors.New("stored parcel does not match expected pre-state")

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	// Returns an error unwrapping to errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// UpdateConditional persists a lifecycle transition as a conditional
	// write: the update succeeds only if the stored parcel still matches
	// expected (status and deliverer) at write time. Returns
	// ErrPreconditionNotMatched when no stored row matches.
	UpdateConditional(ctx context.Context, aggregate *parcel.Parcel, expected parcel.Precondition) error

	// Delete removes a parcel. Only used for still-pending parcels being
	// withdrawn by their requester; lifecycle states past Pending are never
	// deleted by the core.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetOverduePending retrieves pending parcels whose deadline has passed
	// and whose overdue reminder has not yet been sent.
	GetOverduePending(ctx context.Context, now time.Time) ([]*parcel.Parcel, error)
}
