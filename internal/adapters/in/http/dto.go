package http

import (
	"time"

	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/parcel"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewParcel is the request body for posting a parcel.
// PickupPlace and Deadline are optional; server-side defaults apply.
type NewParcel struct {
	ContactName   string     `json:"contact_name"`
	ContactNumber string     `json:"contact_number"`
	Cost          int        `json:"cost"`
	Paid          bool       `json:"paid"`
	PickupPlace   string     `json:"pickup_place,omitempty"`
	DropOffPlace  string     `json:"drop_off_place"`
	Deadline      *time.Time `json:"deadline,omitempty"`
}

// DeliveryAction is the request body for the delivery transition endpoint.
type DeliveryAction struct {
	Action string `json:"action"`
}

// Parcel is the JSON rendering of one parcel row.
type Parcel struct {
	ID            string    `json:"id"`
	Requester     string    `json:"requester"`
	Deliverer     string    `json:"deliverer,omitempty"`
	ContactName   string    `json:"contact_name"`
	ContactNumber string    `json:"contact_number"`
	Cost          int       `json:"cost"`
	Paid          bool      `json:"paid"`
	PickupPlace   string    `json:"pickup_place"`
	DropOffPlace  string    `json:"drop_off_place"`
	Deadline      time.Time `json:"deadline"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
}

// DeliveryResult is the response body for a committed delivery transition.
// Warnings lists notification deliveries that failed after the commit.
type DeliveryResult struct {
	Message  string   `json:"message"`
	Parcel   Parcel   `json:"parcel"`
	Warnings []string `json:"warnings,omitempty"`
}

// Notification is the JSON rendering of one notification row.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	ParcelID  string    `json:"parcel_id"`
	Actor     string    `json:"actor"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFeedback is the request body for posting feedback.
type NewFeedback struct {
	Text string `json:"text"`
}

// Feedback is the JSON rendering of one feedback entry.
type Feedback struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func parcelFromQuery(row queries.ParcelResponse) Parcel {
	return Parcel{
		ID:            row.ID.String(),
		Requester:     row.Requester,
		Deliverer:     row.Deliverer,
		ContactName:   row.ContactName,
		ContactNumber: row.ContactNumber,
		Cost:          row.Cost,
		Paid:          row.Paid,
		PickupPlace:   row.PickupPlace,
		DropOffPlace:  row.DropOffPlace,
		Deadline:      row.Deadline,
		Status:        row.Status.String(),
		CreatedAt:     row.CreatedAt,
	}
}

func parcelFromAggregate(aggregate *parcel.Parcel) Parcel {
	deliverer := ""
	if id := aggregate.Deliverer(); id != nil {
		deliverer = id.String()
	}

	details := aggregate.Details()

	return Parcel{
		ID:            aggregate.ID().String(),
		Requester:     aggregate.Requester().String(),
		Deliverer:     deliverer,
		ContactName:   details.ContactName(),
		ContactNumber: details.ContactNumber(),
		Cost:          details.Cost(),
		Paid:          details.Paid(),
		PickupPlace:   details.PickupPlace(),
		DropOffPlace:  details.DropOffPlace(),
		Deadline:      details.Deadline(),
		Status:        aggregate.Status().String(),
	}
}

func parcelsFromQuery(rows []queries.ParcelResponse) []Parcel {
	parcels := make([]Parcel, len(rows))
	for i, row := range rows {
		parcels[i] = parcelFromQuery(row)
	}
	return parcels
}
