// Package parcel provides domain entities and business logic for the parcel
// delivery lifecycle. It implements the Parcel aggregate root with lifecycle
// management, authorization rules and state transitions.
//
// The package includes:
//   - Parcel: The aggregate root that manages parcel identity, ownership and lifecycle
//   - Status: A state machine that enforces valid delivery status transitions
//   - Details: Descriptive fields carried by a parcel but opaque to the lifecycle
//   - Precondition: The expected pre-state for conditional (compare-and-swap) updates
//
// Key business rules:
//   - Parcels must have a valid unique identifier and requester identity
//   - Delivery status follows a defined workflow: StatusPending -> StatusInProgress -> StatusDelivered,
//     with Cancel returning an StatusInProgress parcel to StatusPending
//   - A requester may never claim their own parcel
//   - Only the requester may cancel or complete a claimed parcel
//   - A deliverer is recorded exactly while a parcel is StatusInProgress or StatusDelivered
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package parcel
