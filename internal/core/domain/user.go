package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is a closed enumeration. Anything that does not parse to admin or
// owner collapses to RoleDefault, which holds no privileges.
type Role int

const (
	RoleDefault Role = iota
	RoleOwner
	RoleAdmin
)

// ParseRole maps a stored role name to a Role. Unknown or empty names yield
// RoleDefault, never a privileged role.
func ParseRole(name string) Role {
	switch name {
	case "admin":
		return RoleAdmin
	case "owner":
		return RoleOwner
	default:
		return RoleDefault
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleOwner:
		return "owner"
	default:
		return "default"
	}
}

// MarshalJSON renders the role by name so API responses never expose the
// numeric representation.
func (r Role) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

func (r *Role) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	*r = ParseRole(s)
	return nil
}

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	APIKey       string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
