package ports

import (
	"context"

	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/policy"
)

// RegisterInput carries the fields for creating a user account.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Role     string
	// APIKey, when set, registers a service credential for the data surface.
	APIKey string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// ChangePassword requires the current password to match before rotating
	// the hash. On success, outstanding session tokens are revoked.
	ChangePassword(ctx context.Context, callerID, currentPassword, newPassword string) error
}

// UserService exposes identity-store reads gated by policy.
type UserService interface {
	// ListUsers returns all users with their roles. Admin only.
	ListUsers(ctx context.Context, caller policy.Caller) ([]*domain.User, error)
}
