package parcel

import (
	"errors"
	"time"

	"parcelhub/internal/pkg/errs"
)

// DefaultPickupPlace is used when the requester does not name a pickup spot.
const DefaultPickupPlace = "In front of SJT"

// defaultDeadlineHour is the hour of day (24h clock) used for the deadline
// when the requester does not provide one.
const defaultDeadlineHour = 16

// maxCost is the upper bound for a parcel's declared cost.
const maxCost = 100000

// Details carries the descriptive fields of a parcel. The delivery lifecycle
// treats them as opaque data: they never influence a transition, but they are
// carried into notifications (the deliverer is told whom to contact and
// where the parcel sits).
//
// Details is a value object: construct it via NewDetails, which applies the
// community defaults for pickup place and deadline.
type Details struct {
	contactName   string
	contactNumber string
	cost          int
	paid          bool
	pickupPlace   string
	dropOffPlace  string
	deadline      time.Time

	isConstructed bool
}

// NewDetails creates parcel details with validation and defaults.
//
// Required: contactName, contactNumber, dropOffPlace. Cost must lie in
// [0, 100000]. An empty pickupPlace falls back to DefaultPickupPlace; a zero
// deadline falls back to today at 16:00 local time.
func NewDetails(
	contactName string,
	contactNumber string,
	cost int,
	paid bool,
	pickupPlace string,
	dropOffPlace string,
	deadline time.Time,
) (Details, error) {
	d := Details{
		paid:          paid,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setContactName(contactName),
		d.setContactNumber(contactNumber),
		d.setCost(cost),
		d.setDropOffPlace(dropOffPlace),
	); err != nil {
		return Details{}, err
	}

	d.pickupPlace = pickupPlace
	if d.pickupPlace == "" {
		d.pickupPlace = DefaultPickupPlace
	}

	d.deadline = deadline
	if d.deadline.IsZero() {
		now := time.Now()
		d.deadline = time.Date(now.Year(), now.Month(), now.Day(), defaultDeadlineHour, 0, 0, 0, now.Location())
	}

	return d, nil
}

// Validate ensures the Details instance was created through NewDetails.
func (d Details) Validate() error {
	if !d.isConstructed {
		return errs.NewValueIsRequiredError("Details must be created via NewDetails")
	}
	return nil
}

// ContactName returns the name of the person to contact about the parcel.
func (d Details) ContactName() string {
	return d.contactName
}

// ContactNumber returns the phone number to contact about the parcel.
func (d Details) ContactNumber() string {
	return d.contactNumber
}

// Cost returns the declared cost of the parcel in whole currency units.
func (d Details) Cost() int {
	return d.cost
}

// Paid reports whether the parcel cost has already been settled.
func (d Details) Paid() bool {
	return d.paid
}

// PickupPlace returns where the deliverer should collect the parcel.
func (d Details) PickupPlace() string {
	return d.pickupPlace
}

// DropOffPlace returns where the parcel should be dropped off.
func (d Details) DropOffPlace() string {
	return d.dropOffPlace
}

// Deadline returns the time by which the parcel should be collected.
func (d Details) Deadline() time.Time {
	return d.deadline
}

func (d *Details) setContactName(contactName string) error {
	if contactName == "" {
		return errs.NewValueIsRequiredError("contactName")
	}
	d.contactName = contactName
	return nil
}

func (d *Details) setContactNumber(contactNumber string) error {
	if contactNumber == "" {
		return errs.NewValueIsRequiredError("contactNumber")
	}
	d.contactNumber = contactNumber
	return nil
}

func (d *Details) setCost(cost int) error {
	if cost < 0 || cost > maxCost {
		return errs.NewValueIsOutOfRangeError("cost", cost, 0, maxCost)
	}
	d.cost = cost
	return nil
}

func (d *Details) setDropOffPlace(dropOffPlace string) error {
	if dropOffPlace == "" {
		return errs.NewValueIsRequiredError("dropOffPlace")
	}
	d.dropOffPlace = dropOffPlace
	return nil
}

// RestoreDetails reconstructs details from persistence without applying
// defaults. Used only by repository mapping code.
func RestoreDetails(
	contactName string,
	contactNumber string,
	cost int,
	paid bool,
	pickupPlace string,
	dropOffPlace string,
	deadline time.Time,
) Details {
	return Details{
		contactName:   contactName,
		contactNumber: contactNumber,
		cost:          cost,
		paid:          paid,
		pickupPlace:   pickupPlace,
		dropOffPlace:  dropOffPlace,
		deadline:      deadline,
		isConstructed: true,
	}
}
