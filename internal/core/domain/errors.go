package domain

import "errors"

var (
	ErrEmailExists         = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrRoleNotFound        = errors.New("role not found")
	ErrDuplicateRole       = errors.New("role already exists")
	ErrRoleAlreadyAssigned = errors.New("role already assigned")
	ErrDefaultRoleMissing  = errors.New("default role not provisioned")
	ErrForbidden           = errors.New("access forbidden")
)

// Token validation failures. The API layer folds all three into one opaque
// unauthorized response so callers cannot tell which check rejected them.
var (
	ErrTokenMalformed       = errors.New("token malformed")
	ErrTokenExpired         = errors.New("token expired")
	ErrTokenSubjectMismatch = errors.New("token subject mismatch")
)

// IsTokenError reports whether err is one of the token validation failures.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrTokenMalformed) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenSubjectMismatch)
}
