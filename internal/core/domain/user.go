package domain

import (
	"strings"
	"time"
)

// RolePrefix marks every stored role name so authorization checks can compare
// token claims against stored names directly.
const RolePrefix = "ROLE_"

const (
	// DefaultRoleName is attached to every new account. It must be
	// provisioned before the first registration is accepted.
	DefaultRoleName = RolePrefix + "USER"
	// AdminRoleName guards the administrative endpoints.
	AdminRoleName = RolePrefix + "ADMIN"
)

// FullRoleName normalizes a raw role name by prepending RolePrefix when
// absent. Normalization is idempotent and case-sensitive.
func FullRoleName(raw string) string {
	if strings.HasPrefix(raw, RolePrefix) {
		return raw
	}
	return RolePrefix + raw
}

// User models a registered account.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Roles        []string   `json:"roles"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// HasRole reports whether the user's role set contains the full role name.
func (u *User) HasRole(fullName string) bool {
	for _, r := range u.Roles {
		if r == fullName {
			return true
		}
	}
	return false
}

// AddRole appends the full role name, preserving set semantics. It returns
// false when the role was already present.
func (u *User) AddRole(fullName string) bool {
	if u.HasRole(fullName) {
		return false
	}
	u.Roles = append(u.Roles, fullName)
	return true
}

// Role is an immutable named grant. Name always carries RolePrefix.
type Role struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is the public projection of a user served on the read path and
// stored in the profile cache.
type Profile struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// NewProfile maps a user to its cacheable projection.
func NewProfile(u *User) *Profile {
	roles := make([]string, len(u.Roles))
	copy(roles, u.Roles)
	return &Profile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Roles:    roles,
	}
}

// RegisterSummary is returned on successful registration. No token is issued
// at registration; the client is expected to log in.
type RegisterSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}
