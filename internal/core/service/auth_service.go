package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/usermgmt/identity-service/internal/core/domain"
	"github.com/usermgmt/identity-service/internal/core/ports"
)

const registeredMessage = "User registered successfully. Please login."

// AuthService implements registration and login, composing the stores, the
// audit trail, the profile cache, the event publisher, and the token service.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	audit  ports.AuditRecorder
	cache  ports.ProfileCache
	events ports.EventPublisher
	tokens ports.TokenService
	tx     ports.TxRunner
	log    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	audit ports.AuditRecorder,
	cache ports.ProfileCache,
	events ports.EventPublisher,
	tokens ports.TokenService,
	tx ports.TxRunner,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		roles:  roles,
		audit:  audit,
		cache:  cache,
		events: events,
		tokens: tokens,
		tx:     tx,
		log:    log,
	}
}

// Register creates a new account with the default role. The user insert and
// the REGISTERED audit entry commit in one unit of work; the lifecycle event
// is enqueued after commit, best-effort. No token is issued here.
func (s *AuthService) Register(ctx context.Context, email, username, password string) (*domain.RegisterSummary, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("register: check email: %w", err)
	}
	if exists {
		return nil, domain.ErrEmailExists
	}

	// The default role is provisioned at startup; its absence is an
	// operational fault, not a user error.
	if _, err := s.roles.FindByName(ctx, domain.DefaultRoleName); err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrDefaultRoleMissing
		}
		return nil, fmt.Errorf("register: lookup default role: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Roles:        []string{domain.DefaultRoleName},
		CreatedAt:    time.Now().UTC(),
	}

	var created *domain.User
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = s.users.Create(ctx, user)
		if txErr != nil {
			return txErr
		}
		return s.audit.Record(ctx, domain.ActionRegistered, created.ID)
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			return nil, domain.ErrEmailExists
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	s.events.Publish(domain.IdentityEvent{
		UserID:    created.ID,
		Email:     created.Email,
		EventType: domain.EventRegistered,
		Timestamp: time.Now().UTC(),
	})

	s.log.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user registered")

	return &domain.RegisterSummary{
		ID:       created.ID,
		Username: created.Username,
		Email:    created.Email,
		Message:  registeredMessage,
	}, nil
}

// Login verifies credentials, updates last-login, records the LOGIN audit
// entry, evicts the profile cache, enqueues the lifecycle event, and issues a
// token. Unknown email and wrong password are indistinguishable to callers.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: find user: %w", err)
	}

	// Credential check completes before any mutation.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	// Evict before the commit so no reader observes the stale projection
	// after the mutation lands. A crash between evict and commit only costs
	// a cache miss.
	if err := s.cache.Evict(ctx, user.Email); err != nil {
		s.log.Warn().Err(err).Str("email", user.Email).Msg("profile cache evict failed")
	}

	now := time.Now().UTC()
	user.LastLogin = &now

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if txErr := s.users.Update(ctx, user); txErr != nil {
			return txErr
		}
		return s.audit.Record(ctx, domain.ActionLogin, user.ID)
	})
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	s.events.Publish(domain.IdentityEvent{
		UserID:    user.ID,
		Email:     user.Email,
		EventType: domain.EventLogin,
		Timestamp: now,
	})

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("login: issue token: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("user logged in")

	return token, nil
}
