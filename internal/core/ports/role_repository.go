package ports

import (
	"context"

	"github.com/usermgmt/identity-service/internal/core/domain"
)

// RoleRepository defines the persistence contract for roles. Roles are
// immutable once created.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	FindByName(ctx context.Context, fullName string) (*domain.Role, error)
}
