// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the parcel delivery system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - NotificationComposer: A domain service that derives the notification
//     recipients and message texts for each delivery lifecycle transition
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
