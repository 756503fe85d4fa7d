package ports

import (
	"context"

	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/policy"
	"github.com/invenco/inventory-system/internal/core/validation"
)

// ItemService is the single authorization + validation pipeline for item
// mutations and reads. Both surfaces call it; the transport only changes how
// the caller identity was resolved, never whether policy and validation run.
type ItemService interface {
	// List returns the items visible to caller under its listing scope.
	List(ctx context.Context, caller policy.Caller) ([]*domain.Item, error)
	// Get returns a single item, scoped like List: an item outside the
	// caller's scope surfaces as domain.ErrItemNotFound.
	Get(ctx context.Context, caller policy.Caller, id string) (*domain.Item, error)
	// Create validates the draft and stores a new item. When the draft
	// carries no owner, the caller becomes the owner; an explicit foreign
	// owner requires the reassign capability (admin only).
	Create(ctx context.Context, caller policy.Caller, draft validation.ItemDraft) (*domain.Item, error)
	// Update applies a validated partial patch. Changing the owner
	// reference requires the reassign capability (admin only).
	Update(ctx context.Context, caller policy.Caller, id string, draft validation.ItemDraft) (*domain.Item, error)
	Delete(ctx context.Context, caller policy.Caller, id string) (*domain.Item, error)
}
