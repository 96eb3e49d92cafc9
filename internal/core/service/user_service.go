package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/usermgmt/identity-service/internal/core/domain"
	"github.com/usermgmt/identity-service/internal/core/ports"
)

// UserService serves the profile read path through the read-through cache.
type UserService struct {
	users ports.UserRepository
	cache ports.ProfileCache
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, cache ports.ProfileCache, log zerolog.Logger) *UserService {
	return &UserService{users: users, cache: cache, log: log}
}

// GetProfile returns the cached projection for email, loading and storing it
// on a miss. A missing user is never negatively cached.
func (s *UserService) GetProfile(ctx context.Context, email string) (*domain.Profile, error) {
	profile, err := s.cache.Get(ctx, email)
	if err != nil {
		// Cache trouble degrades to a store read.
		s.log.Warn().Err(err).Str("email", email).Msg("profile cache read failed")
	}
	if profile != nil {
		return profile, nil
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	profile = domain.NewProfile(user)
	if err := s.cache.Put(ctx, email, profile); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("profile cache write failed")
	}
	return profile, nil
}

// CountUsers reports the total number of registered accounts.
func (s *UserService) CountUsers(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}
