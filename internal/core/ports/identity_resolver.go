package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/kernel"
)

// IdentityResolver maps an opaque session token from an inbound request to
// the stable identity of an authenticated community member. The core trusts
// the resolved identity as authenticated.
//
// Unknown or expired tokens yield an error unwrapping to
// errs.ErrObjectNotFound; the transport layer turns that into an
// unauthenticated response before any storage is touched.
type IdentityResolver interface {
	Resolve(ctx context.Context, sessionToken string) (kernel.Identity, error)
}
