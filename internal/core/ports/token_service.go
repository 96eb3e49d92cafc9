package ports

import "github.com/usermgmt/identity-service/internal/core/domain"

// TokenClaims is the verified payload of a bearer token.
type TokenClaims struct {
	Email string
	Roles []string
}

// TokenService issues and validates signed bearer tokens.
type TokenService interface {
	// Issue produces a signed token whose role claim equals the user's role
	// set at issuance time.
	Issue(user *domain.User) (string, error)
	// Parse verifies the signature and expiry and returns the claims.
	Parse(token string) (*TokenClaims, error)
	// Validate additionally checks the token subject against expectedEmail.
	Validate(token, expectedEmail string) error
}
