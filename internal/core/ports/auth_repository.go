package ports

import (
	"context"

	"github.com/invenco/inventory-system/internal/core/domain"
)

// AuthRepository defines the interface for user persistence. Lookups return
// domain.ErrUserNotFound when no user matches.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByAPIKey resolves a data-surface service credential to its user.
	FindByAPIKey(ctx context.Context, apiKey string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	List(ctx context.Context) ([]*domain.User, error)
}
