package ports

import (
	"context"

	"github.com/usermgmt/identity-service/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Update persists last-login and role-set changes. Last writer wins.
	Update(ctx context.Context, user *domain.User) error
	Count(ctx context.Context) (int64, error)
}
