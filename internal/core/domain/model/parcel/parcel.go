package parcel

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created through
	// the NewParcel or RestoreParcel factory methods. This ensures all parcels are
	// properly validated.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")
)

// Parcel represents a peer-to-peer delivery request in the community. It is the
// aggregate root that owns the delivery lifecycle from posting through claim,
// cancellation and completion.
//
// Parcel follows these invariants:
//   - Must have a valid unique identifier and requester identity
//   - The requester never changes after creation
//   - A deliverer is set if and only if the parcel is StatusInProgress or StatusDelivered
//   - The requester may never be the deliverer of their own parcel
//   - Status transitions follow the StatusPending -> StatusInProgress -> StatusDelivered machine,
//     with Cancel returning an StatusInProgress parcel to StatusPending
//   - Can only be created through NewParcel or RestoreParcel
//
// Both the lifecycle transitions and the authorization rules guarding them
// live on this aggregate: a transition method receives the caller's identity
// and refuses the mutation if the caller is not entitled to it.
type Parcel struct {
	// id is the unique identifier for the parcel
	id kernel.UUID

	// requester is the identity of the member who posted the parcel
	requester kernel.Identity

	// deliverer is the identity of the member delivering the parcel
	// (nil while StatusPending)
	deliverer *kernel.Identity

	// details holds descriptive fields opaque to the lifecycle
	details Details

	// status represents the current state in the delivery lifecycle
	status Status

	// reminderSent records that the overdue reminder was already emitted
	reminderSent bool

	// isConstructed ensures the parcel was created via a factory method
	isConstructed bool
}

// NewParcel creates a new Parcel in StatusPending status with validation. This is the
// only way to create a valid fresh Parcel, ensuring all business invariants
// are maintained.
//
// Parameters:
//   - id: Unique identifier for the parcel (must be valid UUID)
//   - requester: Identity of the posting member (must be constructed)
//   - details: Descriptive fields (must be constructed via NewDetails)
//
// Returns:
//   - *Parcel: The created parcel if all validations pass
//   - error: Validation error if any parameter is invalid
func NewParcel(id kernel.UUID, requester kernel.Identity, details Details) (*Parcel, error) {
	p := &Parcel{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setRequester(requester),
		p.setDetails(details),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence. In addition to the
// field validations performed by NewParcel it checks the coherence of status
// and deliverer: an StatusInProgress or StatusDelivered parcel must carry a deliverer,
// a StatusPending one must not, and the deliverer can never equal the requester.
func RestoreParcel(
	id kernel.UUID,
	requester kernel.Identity,
	deliverer *kernel.Identity,
	details Details,
	status Status,
	reminderSent bool,
) (*Parcel, error) {
	p := &Parcel{
		reminderSent:  reminderSent,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setRequester(requester),
		p.setDetails(details),
		status.Validate(),
		status.ValidateCanHaveDeliverer(deliverer != nil),
	); err != nil {
		return nil, err
	}
	p.status = status

	if deliverer != nil {
		if err := deliverer.Validate(); err != nil {
			return nil, err
		}
		if deliverer.IsEqual(requester) {
			return nil, errs.NewValueIsInvalidError("deliverer equals requester")
		}
		d := *deliverer
		p.deliverer = &d
	}

	return p, nil
}

// Validate ensures the Parcel instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}

	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Requester returns the identity of the member who posted the parcel.
func (p *Parcel) Requester() kernel.Identity {
	return p.requester
}

// Deliverer returns the identity of the member delivering the parcel.
// Returns nil while the parcel is StatusPending.
func (p *Parcel) Deliverer() *kernel.Identity {
	return p.deliverer
}

// Details returns the descriptive fields of the parcel.
func (p *Parcel) Details() Details {
	return p.details
}

// Status returns the current delivery status of the parcel.
func (p *Parcel) Status() Status {
	return p.status
}

// ReminderSent reports whether the overdue reminder was already emitted.
func (p *Parcel) ReminderSent() bool {
	return p.reminderSent
}

// Precondition captures the lifecycle state a transition was computed
// against. Repositories use it as the expected pre-state of a conditional
// update, so a concurrent writer that changed the parcel in the meantime
// makes the update match zero rows instead of silently overwriting.
type Precondition struct {
	Status    Status
	Deliverer *kernel.Identity
}

// Precondition returns the current lifecycle state of the parcel for use as
// a conditional-update expectation. Capture it before calling a transition
// method.
func (p *Parcel) Precondition() Precondition {
	var deliverer *kernel.Identity
	if p.deliverer != nil {
		d := *p.deliverer
		deliverer = &d
	}
	return Precondition{
		Status:    p.status,
		Deliverer: deliverer,
	}
}

// Claim assigns the caller as the parcel's deliverer and moves the parcel
// to StatusInProgress.
//
// Business rules:
//   - The caller must be a valid identity
//   - The caller must not be the requester (no self-dealing)
//   - The parcel must be StatusPending
//
// Returns:
//   - nil on success
//   - error unwrapping to errs.ErrOperationForbidden for a self-claim
//   - error unwrapping to errs.ErrStateConflict for an invalid state
func (p *Parcel) Claim(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if caller.IsEqual(p.requester) {
		return errs.NewOperationForbiddenError("claim", "requester cannot claim own parcel")
	}

	newStatus, err := p.status.Claim()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.deliverer = &caller
	return nil
}

// Cancel withdraws the current acceptance and returns the parcel to StatusPending,
// clearing the deliverer so another member may claim it.
//
// Business rules:
//   - Only the requester may cancel
//   - The parcel must be StatusInProgress
//   - An StatusInProgress parcel without a deliverer is inconsistent and is
//     reported as a conflict rather than silently accepted
//
// Returns:
//   - nil on success
//   - error unwrapping to errs.ErrOperationForbidden for a non-requester caller
//   - error unwrapping to errs.ErrStateConflict for an invalid state
func (p *Parcel) Cancel(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if !caller.IsEqual(p.requester) {
		return errs.NewOperationForbiddenError("cancel", "only the requester may cancel")
	}

	newStatus, err := p.status.Cancel()
	if err != nil {
		return err
	}

	if p.deliverer == nil {
		return errs.NewStateConflictError("cancel", "parcel has no deliverer")
	}

	p.status = newStatus
	p.deliverer = nil
	return nil
}

// Complete marks the parcel as delivered. The deliverer is retained for
// audit: a StatusDelivered parcel keeps recording who delivered it.
//
// Business rules:
//   - Only the requester may complete
//   - The parcel must be StatusInProgress
//   - An StatusInProgress parcel without a deliverer is inconsistent and is
//     reported as a conflict
//
// Returns:
//   - nil on success
//   - error unwrapping to errs.ErrOperationForbidden for a non-requester caller
//   - error unwrapping to errs.ErrStateConflict for an invalid state
func (p *Parcel) Complete(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if !caller.IsEqual(p.requester) {
		return errs.NewOperationForbiddenError("complete", "only the requester may complete")
	}

	newStatus, err := p.status.Complete()
	if err != nil {
		return err
	}

	if p.deliverer == nil {
		return errs.NewStateConflictError("complete", "parcel has no deliverer")
	}

	p.status = newStatus
	return nil
}

// MarkReminded records that the overdue reminder has been emitted for this
// parcel. Only meaningful while the parcel is still StatusPending.
func (p *Parcel) MarkReminded() error {
	if p.status != StatusPending {
		return errs.NewStateConflictError("remind", "parcel is not pending")
	}
	if p.reminderSent {
		return errs.NewStateConflictError("remind", "reminder already sent")
	}

	p.reminderSent = true
	return nil
}

// setID validates and sets the parcel's unique identifier.
// This is a private method used only during construction.
func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setRequester validates and sets the requester identity.
// This is a private method used only during construction.
func (p *Parcel) setRequester(requester kernel.Identity) error {
	if err := requester.Validate(); err != nil {
		return err
	}
	p.requester = requester
	return nil
}

// setDetails validates and sets the descriptive fields.
// This is a private method used only during construction.
func (p *Parcel) setDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	p.details = details
	return nil
}
