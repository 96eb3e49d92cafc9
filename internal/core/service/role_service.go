package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/usermgmt/identity-service/internal/core/domain"
	"github.com/usermgmt/identity-service/internal/core/ports"
)

// RoleService implements role creation and role-to-user assignment.
type RoleService struct {
	roles ports.RoleRepository
	users ports.UserRepository
	audit ports.AuditRecorder
	cache ports.ProfileCache
	tx    ports.TxRunner
	log   zerolog.Logger
}

func NewRoleService(
	roles ports.RoleRepository,
	users ports.UserRepository,
	audit ports.AuditRecorder,
	cache ports.ProfileCache,
	tx ports.TxRunner,
	log zerolog.Logger,
) *RoleService {
	return &RoleService{roles: roles, users: users, audit: audit, cache: cache, tx: tx, log: log}
}

// CreateRole persists a new role under its normalized name. Role creation is
// a provisioning action and intentionally writes no audit entry.
func (s *RoleService) CreateRole(ctx context.Context, rawName string) (*domain.Role, error) {
	fullName := domain.FullRoleName(rawName)

	if _, err := s.roles.FindByName(ctx, fullName); err == nil {
		return nil, domain.ErrDuplicateRole
	} else if !errors.Is(err, domain.ErrRoleNotFound) {
		return nil, fmt.Errorf("create role: lookup %q: %w", fullName, err)
	}

	role, err := s.roles.Create(ctx, &domain.Role{Name: fullName, CreatedAt: time.Now().UTC()})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateRole) {
			return nil, domain.ErrDuplicateRole
		}
		return nil, fmt.Errorf("create role: %w", err)
	}

	s.log.Info().Str("role", fullName).Msg("role created")
	return role, nil
}

// AssignRole adds the normalized role to the user's set. The user update and
// the ROLE_ASSIGNED audit entry commit in one unit of work; the user's cached
// profile is evicted before the commit returns.
func (s *RoleService) AssignRole(ctx context.Context, userID int64, rawName string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("assign role: find user %d: %w", userID, err)
	}

	fullName := domain.FullRoleName(rawName)

	if _, err := s.roles.FindByName(ctx, fullName); err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return domain.ErrRoleNotFound
		}
		return fmt.Errorf("assign role: lookup %q: %w", fullName, err)
	}

	if user.HasRole(fullName) {
		return domain.ErrRoleAlreadyAssigned
	}

	if err := s.cache.Evict(ctx, user.Email); err != nil {
		s.log.Warn().Err(err).Str("email", user.Email).Msg("profile cache evict failed")
	}

	user.AddRole(fullName)

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if txErr := s.users.Update(ctx, user); txErr != nil {
			return txErr
		}
		return s.audit.Record(ctx, domain.RoleAssignedAction(fullName), userID)
	})
	if err != nil {
		return fmt.Errorf("assign role: %w", err)
	}

	s.log.Info().Int64("user_id", userID).Str("role", fullName).Msg("role assigned")
	return nil
}
