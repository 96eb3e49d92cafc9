package ports

import (
	"context"

	"github.com/usermgmt/identity-service/internal/core/domain"
)

// ProfileCache is the read-through / write-invalidate cache keyed by email.
// Get returns (nil, nil) on a miss; misses are never cached.
type ProfileCache interface {
	Get(ctx context.Context, email string) (*domain.Profile, error)
	Put(ctx context.Context, email string, profile *domain.Profile) error
	Evict(ctx context.Context, email string) error
}
