package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/usermgmt/identity-service/internal/core/domain"
	"github.com/usermgmt/identity-service/internal/core/ports"
)

// identityClaims is the token payload: subject carries the email, roles the
// full role names at issuance time.
type identityClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed bearer tokens. The secret is
// injected once at construction and never rotates for the process lifetime.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue produces a signed token for the user. The embedded role claim equals
// the user's role set at issuance time and is not refreshed until re-issuance.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := s.now().UTC()
	roles := make([]string, len(user.Roles))
	copy(roles, user.Roles)

	claims := identityClaims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Parse verifies the signature and expiry and returns the claims. Failures
// map to domain.ErrTokenExpired or domain.ErrTokenMalformed.
func (s *TokenService) Parse(token string) (*ports.TokenClaims, error) {
	var claims identityClaims
	tkn, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenMalformed
	}
	if !tkn.Valid || claims.Subject == "" {
		return nil, domain.ErrTokenMalformed
	}

	return &ports.TokenClaims{Email: claims.Subject, Roles: claims.Roles}, nil
}

// Validate parses the token and checks its subject against expectedEmail.
func (s *TokenService) Validate(token, expectedEmail string) error {
	claims, err := s.Parse(token)
	if err != nil {
		return err
	}
	if claims.Email != expectedEmail {
		return domain.ErrTokenSubjectMismatch
	}
	return nil
}
