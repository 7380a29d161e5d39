package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/guard"
)

var (
	ErrGetMyParcelsQueryIsNotConstructed = errors.New(
		"GetMyParcelsQuery must be created via NewGetMyParcelsQuery constructor",
	)
)

// GetMyParcelsQuery retrieves every parcel posted by the caller, whatever
// its lifecycle state.
type GetMyParcelsQuery struct {
	requester kernel.Identity

	guard guard.ConstructorGuard
}

// NewGetMyParcelsQuery creates a query for the caller's posted parcels.
// Validates the requester identity.
func NewGetMyParcelsQuery(requester kernel.Identity) (GetMyParcelsQuery, error) {
	if err := requester.Validate(); err != nil {
		return GetMyParcelsQuery{}, err
	}

	return GetMyParcelsQuery{
		requester: requester,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMyParcelsQueryIsNotConstructed if validation fails.
func (q GetMyParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetMyParcelsQueryIsNotConstructed)
}

// Requester returns the identity whose parcels are being listed.
func (q GetMyParcelsQuery) Requester() kernel.Identity {
	return q.requester
}
