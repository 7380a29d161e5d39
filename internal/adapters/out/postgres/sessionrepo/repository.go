package sessionrepo

import (
	"context"
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIdentityResolver implements IdentityResolver against the sessions table.
// An unknown or expired token resolves to an object-not-found error, which
// the HTTP layer reports as an authentication failure.
type GormIdentityResolver struct {
	db *gorm.DB
}

// NewGormIdentityResolver creates a resolver backed by the sessions table.
func NewGormIdentityResolver(db *gorm.DB) *GormIdentityResolver {
	return &GormIdentityResolver{db: db}
}

// Resolve maps a session token to the member identity it belongs to.
func (r *GormIdentityResolver) Resolve(ctx context.Context, sessionToken string) (kernel.Identity, error) {
	if sessionToken == "" {
		return kernel.Identity{}, errs.NewValueIsRequiredError("sessionToken")
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "token = ?", sessionToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Identity{}, errs.NewObjectNotFoundError("session", sessionToken)
		}
		return kernel.Identity{}, err
	}

	if !dto.ExpiresAt.IsZero() && dto.ExpiresAt.Before(time.Now()) {
		return kernel.Identity{}, errs.NewObjectNotFoundError("session", sessionToken)
	}

	return kernel.NewIdentity(dto.Identity)
}

// Store persists a session row. Sessions are normally written by the
// authentication frontend; this is used for provisioning and tests.
func (r *GormIdentityResolver) Store(
	ctx context.Context,
	token string,
	identity kernel.Identity,
	expiresAt time.Time,
) error {
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}
	if err := identity.Validate(); err != nil {
		return err
	}

	dto := SessionDTO{
		Token:     token,
		Identity:  identity.String(),
		ExpiresAt: expiresAt,
	}

	return r.db.WithContext(ctx).Save(&dto).Error
}
