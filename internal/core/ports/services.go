package ports

import (
	"context"

	"github.com/usermgmt/identity-service/internal/core/domain"
)

// AuthService orchestrates registration and login.
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*domain.RegisterSummary, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// RoleService is the administrative RBAC surface.
type RoleService interface {
	CreateRole(ctx context.Context, rawName string) (*domain.Role, error)
	AssignRole(ctx context.Context, userID int64, rawName string) error
}

// UserService serves the cached profile read path.
type UserService interface {
	GetProfile(ctx context.Context, email string) (*domain.Profile, error)
	CountUsers(ctx context.Context) (int64, error)
}
