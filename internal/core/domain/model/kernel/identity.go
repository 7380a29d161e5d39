package kernel

import (
	"strings"

	"parcelhub/internal/pkg/errs"
)

// ErrIdentityIsNotConstructed indicates that an Identity was not created through
// NewIdentity. This error is returned when validating a zero-value Identity.
var ErrIdentityIsNotConstructed = errs.NewValueIsRequiredError(
	"Identity must be created via NewIdentity",
)

// Identity is a value object representing the stable identity of an
// authenticated community member, as produced by the identity resolver at the
// system boundary. In practice it is an email address, but the domain treats
// it as an opaque string: the only operations are equality and string
// rendering.
//
// The zero value of Identity is invalid and must be constructed via
// NewIdentity. Identity is immutable and safe for concurrent use.
//
// Example usage:
//
//	requester, err := kernel.NewIdentity("alice@example.com")
//	if err != nil {
//	    // handle missing identity
//	}
//	if requester.IsEqual(caller) {
//	    // self-dealing check
//	}
type Identity struct {
	value string
}

// NewIdentity creates an Identity from its raw string form. Leading and
// trailing whitespace is trimmed. Returns an error if the result is empty,
// which is how an unauthenticated caller surfaces inside the domain.
func NewIdentity(raw string) (Identity, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Identity{}, errs.NewValueIsRequiredError("identity")
	}
	return Identity{value: trimmed}, nil
}

// String returns the raw string form of the identity.
func (i Identity) String() string {
	return i.value
}

// IsEqual compares two identities for equality. Two identities are equal
// when their raw string forms match exactly.
func (i Identity) IsEqual(other Identity) bool {
	return i.value == other.value
}

// IsZero reports whether the identity is the zero value, i.e. no identity
// at all. Used to distinguish "no deliverer" from a concrete deliverer.
func (i Identity) IsZero() bool {
	return i.value == ""
}

// Validate checks that the identity was properly constructed.
// Returns ErrIdentityIsNotConstructed for a zero value.
func (i Identity) Validate() error {
	if i.value == "" {
		return ErrIdentityIsNotConstructed
	}
	return nil
}
