package ports

import (
	"context"

	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/validation"
)

// ItemRepository defines persistence operations for items. Writes are atomic
// per item; the repository never applies policy, callers have already been
// authorized by the service layer.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	// Get returns the item or domain.ErrItemNotFound.
	Get(ctx context.Context, id string) (*domain.Item, error)
	ListAll(ctx context.Context) ([]*domain.Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Item, error)
	// Update applies the non-nil fields of patch and returns the updated
	// item, or domain.ErrItemNotFound.
	Update(ctx context.Context, id string, patch *validation.ItemPatch) (*domain.Item, error)
	// Delete removes the item, or returns domain.ErrItemNotFound.
	Delete(ctx context.Context, id string) error
}
