package parcel

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of a parcel.
// It implements a state machine with defined transitions so parcels
// follow the correct delivery workflow.
//
// State transitions:
//
//	StatusPending ──Claim──> StatusInProgress ──Complete──> StatusDelivered
//	   ^                   │
//	   └──────Cancel───────┘
//
// StatusDelivered is terminal: no transitions leave it. Status is a value object
// that validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when a parcel is first posted.
	// Parcels in this status are waiting for a member to claim delivery.
	StatusPending

	// StatusInProgress indicates a deliverer has claimed the parcel.
	// The requester may cancel or complete the delivery from this status.
	StatusInProgress

	// StatusDelivered indicates the parcel has been successfully delivered.
	// This is a final state with no further transitions allowed.
	StatusDelivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusInProgress: "in_progress",
		StatusDelivered:  "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "pending",
		StatusInProgress: "in_progress",
		StatusDelivered:  "delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: StatusPending, StatusInProgress, StatusDelivered.
// StatusUnknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status: "pending", "in_progress" or
// "delivered" for valid statuses and "unknown" otherwise.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateCanHaveDeliverer validates the consistency between parcel status and
// deliverer assignment.
//
// Business rules:
//   - StatusPending parcels must not have a deliverer
//   - StatusInProgress parcels must have a deliverer
//   - StatusDelivered parcels retain their deliverer for audit
//
// Parameters:
//   - deliverer: whether the parcel has a deliverer assigned
//
// Returns:
//   - error: validation error if status and deliverer assignment are inconsistent
func (s Status) ValidateCanHaveDeliverer(deliverer bool) error {
	if deliverer && s != StatusInProgress && s != StatusDelivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a deliverer", s.String()),
		)
	}

	if !deliverer && (s == StatusInProgress || s == StatusDelivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no deliverer", s.String()),
		)
	}

	return nil
}

// Claim transitions the status to StatusInProgress.
//
// Valid transitions:
//   - StatusPending -> StatusInProgress
//
// Invalid transitions:
//   - StatusInProgress -> StatusInProgress (already claimed by someone)
//   - StatusDelivered -> StatusInProgress (terminal)
//   - StatusUnknown -> StatusInProgress (invalid initial state)
//
// Returns:
//   - (StatusInProgress, nil) on valid transition
//   - (0, error) unwrapping to errs.ErrStateConflict otherwise
func (s Status) Claim() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewStateConflictError(
			"claim",
			fmt.Sprintf("%s is not a valid status to claim", s.String()),
		)
	}

	return StatusInProgress, nil
}

// Cancel transitions the status back to StatusPending.
//
// Valid transitions:
//   - StatusInProgress -> StatusPending (requester withdraws the acceptance)
//
// Invalid transitions:
//   - StatusPending -> StatusPending (nothing to cancel)
//   - StatusDelivered -> StatusPending (terminal)
//   - StatusUnknown -> StatusPending (invalid initial state)
//
// Returns:
//   - (StatusPending, nil) on valid transition
//   - (0, error) unwrapping to errs.ErrStateConflict otherwise
func (s Status) Cancel() (Status, error) {
	if s != StatusInProgress {
		return 0, errs.NewStateConflictError(
			"cancel",
			fmt.Sprintf("%s is not a valid status to cancel", s.String()),
		)
	}

	return StatusPending, nil
}

// Complete transitions the status to StatusDelivered.
//
// Valid transitions:
//   - StatusInProgress -> StatusDelivered
//
// Invalid transitions:
//   - StatusPending -> StatusDelivered (must be claimed first)
//   - StatusDelivered -> StatusDelivered (already delivered)
//   - StatusUnknown -> StatusDelivered (invalid initial state)
//
// StatusDelivered is a final state with no further transitions possible.
//
// Returns:
//   - (StatusDelivered, nil) on valid transition
//   - (0, error) unwrapping to errs.ErrStateConflict otherwise
func (s Status) Complete() (Status, error) {
	if s != StatusInProgress {
		return 0, errs.NewStateConflictError(
			"complete",
			fmt.Sprintf("%s is not a valid status to complete", s.String()),
		)
	}

	return StatusDelivered, nil
}
