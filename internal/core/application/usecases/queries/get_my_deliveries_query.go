package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetMyDeliveriesQueryIsNotConstructed = errors.New(
		"GetMyDeliveriesQuery must be created via NewGetMyDeliveriesQuery constructor",
	)
)

// GetMyDeliveriesQuery retrieves every parcel the caller is delivering or
// has delivered.
type GetMyDeliveriesQuery struct {
	deliverer kernel.Identity

	guard guard.ConstructorGuard
}

// NewGetMyDeliveriesQuery creates a query for the caller's deliveries.
// Validates the deliverer identity.
func NewGetMyDeliveriesQuery(deliverer kernel.Identity) (GetMyDeliveriesQuery, error) {
	if err := deliverer.Validate(); err != nil {
		return GetMyDeliveriesQuery{}, err
	}

	return GetMyDeliveriesQuery{
		deliverer: deliverer,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMyDeliveriesQueryIsNotConstructed if validation fails.
func (q GetMyDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetMyDeliveriesQueryIsNotConstructed)
}

// Deliverer returns the identity whose deliveries are being listed.
func (q GetMyDeliveriesQuery) Deliverer() kernel.Identity {
	return q.deliverer
}
