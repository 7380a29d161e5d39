// Package redis caches session token resolutions so the hot per-request
// identity lookup does not hit Postgres every time.
package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// CachedIdentityResolver decorates an IdentityResolver with a Redis cache.
// Only successful resolutions are cached; unknown or expired tokens always
// go to the underlying resolver so revocations take effect immediately.
type CachedIdentityResolver struct {
	inner  ports.IdentityResolver
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// NewCachedIdentityResolver creates a caching decorator around inner.
// Cache entries live for ttl; a zero ttl disables expiry.
func NewCachedIdentityResolver(
	inner ports.IdentityResolver,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedIdentityResolver {
	if logger == nil {
		logger = slog.Default()
	}

	return &CachedIdentityResolver{
		inner:  inner,
		client: client,
		ttl:    ttl,
		log:    logger,
	}
}

// Resolve maps a session token to an identity, consulting the cache first.
// Cache failures degrade to the underlying resolver, never to an error.
func (r *CachedIdentityResolver) Resolve(ctx context.Context, sessionToken string) (kernel.Identity, error) {
	key := sessionKeyPrefix + sessionToken

	cached, err := r.client.Get(ctx, key).Result()
	if err == nil {
		return kernel.NewIdentity(cached)
	}
	if !errors.Is(err, redis.Nil) {
		r.log.Warn("session cache read failed", "error", err)
	}

	identity, err := r.inner.Resolve(ctx, sessionToken)
	if err != nil {
		return kernel.Identity{}, err
	}

	if setErr := r.client.Set(ctx, key, identity.String(), r.ttl).Err(); setErr != nil {
		r.log.Warn("session cache write failed", "error", setErr)
	}

	return identity, nil
}

// Invalidate drops a token from the cache. Called when a session is revoked.
func (r *CachedIdentityResolver) Invalidate(ctx context.Context, sessionToken string) error {
	return r.client.Del(ctx, sessionKeyPrefix+sessionToken).Err()
}
