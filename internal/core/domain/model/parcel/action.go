package parcel

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// Action is the closed set of delivery lifecycle transitions a caller may
// request. Any value outside {Claim, Cancel, Complete} is rejected at the
// boundary by ParseAction rather than falling through.
type Action int

const (
	// ActionUnknown represents an invalid or undefined action.
	// This value (0) helps catch uninitialized Action values.
	ActionUnknown Action = iota

	// ActionClaim requests that the caller become the parcel's deliverer.
	ActionClaim

	// ActionCancel requests that the requester withdraw the current acceptance.
	ActionCancel

	// ActionComplete requests that the requester confirm the delivery.
	ActionComplete
)

// getActionStrings returns a map of Action values to their wire names.
func getActionStrings() map[Action]string {
	return map[Action]string{
		ActionClaim:    "claim",
		ActionCancel:   "cancel",
		ActionComplete: "complete",
	}
}

// ParseAction converts a wire name into an Action. Returns an error
// unwrapping to errs.ErrValueIsInvalid for any unrecognized value.
func ParseAction(s string) (Action, error) {
	for action, name := range getActionStrings() {
		if name == s {
			return action, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"action is invalid",
		fmt.Errorf("%q is not a valid action", s),
	)
}

// Validate checks if the Action value is valid.
// Valid actions are: ActionClaim, ActionCancel, ActionComplete.
func (a Action) Validate() error {
	if _, ok := getActionStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"action is invalid",
			fmt.Errorf("%d is not a valid action", a),
		)
	}
	return nil
}

// String returns the wire name of the action, or "unknown" for invalid values.
func (a Action) String() string {
	if s, ok := getActionStrings()[a]; ok {
		return s
	}
	return "unknown"
}
