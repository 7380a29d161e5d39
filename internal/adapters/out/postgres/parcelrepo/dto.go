// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// Indexed by requester, deliverer and status to serve the board and the
// per-member listings efficiently.
type ParcelDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequesterID   string    `gorm:"type:text;index;not null"`
	DelivererID   *string   `gorm:"type:text;index"`
	ContactName   string    `gorm:"type:text;not null"`
	ContactNumber string    `gorm:"type:text;not null"`
	Cost          int
	Paid          bool
	PickupPlace   string `gorm:"type:text;not null"`
	DropOffPlace  string `gorm:"type:text;not null"`
	Deadline      time.Time
	Status        int `gorm:"index"`
	ReminderSent  bool
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var delivererID *string
	if id := aggregate.Deliverer(); id != nil {
		raw := id.String()
		delivererID = &raw
	}

	details := aggregate.Details()

	return ParcelDTO{
		ID:            aggregate.ID().Bytes(),
		RequesterID:   aggregate.Requester().String(),
		DelivererID:   delivererID,
		ContactName:   details.ContactName(),
		ContactNumber: details.ContactNumber(),
		Cost:          details.Cost(),
		Paid:          details.Paid(),
		PickupPlace:   details.PickupPlace(),
		DropOffPlace:  details.DropOffPlace(),
		Deadline:      details.Deadline(),
		Status:        int(aggregate.Status()),
		ReminderSent:  aggregate.ReminderSent(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the complete aggregate including status and deliverer using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requester, err := kernel.NewIdentity(dto.RequesterID)
	if err != nil {
		return nil, err
	}

	var deliverer *kernel.Identity
	if dto.DelivererID != nil {
		identity, identityErr := kernel.NewIdentity(*dto.DelivererID)
		if identityErr != nil {
			return nil, identityErr
		}
		deliverer = &identity
	}

	details := parcel.RestoreDetails(
		dto.ContactName,
		dto.ContactNumber,
		dto.Cost,
		dto.Paid,
		dto.PickupPlace,
		dto.DropOffPlace,
		dto.Deadline,
	)

	return parcel.RestoreParcel(id, requester, deliverer, details, parcel.Status(dto.Status), dto.ReminderSent)
}
