package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/policy"
	"github.com/invenco/inventory-system/internal/core/ports"
	"github.com/invenco/inventory-system/internal/core/validation"
	"github.com/invenco/inventory-system/internal/metrics"
)

// ItemService implements the authorize → validate → persist pipeline. Every
// entry point goes through here; there is no unvalidated write path.
type ItemService struct {
	repo   ports.ItemRepository
	users  ports.AuthRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewItemService(repo ports.ItemRepository, users ports.AuthRepository, audit ports.AuditRecorder, logger zerolog.Logger) *ItemService {
	return &ItemService{repo: repo, users: users, audit: audit, logger: logger}
}

// List returns items under the caller's policy scope.
func (s *ItemService) List(ctx context.Context, caller policy.Caller) ([]*domain.Item, error) {
	switch policy.ListScope(caller) {
	case policy.ScopeAll:
		return s.repo.ListAll(ctx)
	case policy.ScopeOwn:
		return s.repo.ListByOwner(ctx, caller.ID)
	default:
		return nil, s.deny(ctx, caller, policy.ActionRead, "")
	}
}

// Get returns a single item under the caller's listing scope. Out-of-scope
// items surface as not found, mirroring the scoped list queries.
func (s *ItemService) Get(ctx context.Context, caller policy.Caller, id string) (*domain.Item, error) {
	scope := policy.ListScope(caller)
	if scope == policy.ScopeNone {
		return nil, s.deny(ctx, caller, policy.ActionRead, id)
	}

	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if scope == policy.ScopeOwn && item.OwnerID != caller.ID {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

// Create validates the draft and stores a new item owned by the caller, or by
// the draft's owner when the caller holds the reassign capability.
func (s *ItemService) Create(ctx context.Context, caller policy.Caller, draft validation.ItemDraft) (*domain.Item, error) {
	if policy.Authorize(caller, policy.ActionCreate, "") != policy.Allow {
		return nil, s.deny(ctx, caller, policy.ActionCreate, "")
	}
	if draft.OwnerID != nil && *draft.OwnerID != caller.ID {
		if policy.Authorize(caller, policy.ActionReassignOwner, "") != policy.Allow {
			return nil, s.deny(ctx, caller, policy.ActionReassignOwner, "")
		}
	}
	if draft.OwnerID == nil {
		draft.OwnerID = &caller.ID
	}

	valid, err := validation.ValidateCreate(ctx, draft, s.userFinder())
	if err != nil {
		return nil, s.invalid(caller, policy.ActionCreate, err)
	}

	now := time.Now().UTC()
	item := &domain.Item{
		Name:            valid.Name,
		Category:        valid.Category,
		Quantity:        valid.Quantity,
		EstimatedPrice:  valid.EstimatedPrice,
		Location:        valid.Location,
		AcquisitionDate: valid.AcquisitionDate,
		OwnerID:         valid.OwnerID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create item")
		return nil, err
	}

	metrics.ItemsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.record(ctx, caller, policy.ActionCreate, created.ID, "allowed")
	s.logger.Info().Str("item_id", created.ID).Str("owner_id", created.OwnerID).Msg("item created")
	return created, nil
}

// Update applies a validated partial patch to an existing item.
func (s *ItemService) Update(ctx context.Context, caller policy.Caller, id string, draft validation.ItemDraft) (*domain.Item, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if policy.Authorize(caller, policy.ActionEdit, item.OwnerID) != policy.Allow {
		return nil, s.deny(ctx, caller, policy.ActionEdit, id)
	}
	if draft.OwnerID != nil && *draft.OwnerID != item.OwnerID {
		if policy.Authorize(caller, policy.ActionReassignOwner, item.OwnerID) != policy.Allow {
			return nil, s.deny(ctx, caller, policy.ActionReassignOwner, id)
		}
	}

	patch, err := validation.ValidatePatch(ctx, draft, s.userFinder())
	if err != nil {
		return nil, s.invalid(caller, policy.ActionEdit, err)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.record(ctx, caller, policy.ActionEdit, id, "allowed")
	s.logger.Info().Str("item_id", id).Msg("item updated")
	return updated, nil
}

// Delete removes an item after the policy check. The deleted item is returned
// so controllers can confirm what was removed.
func (s *ItemService) Delete(ctx context.Context, caller policy.Caller, id string) (*domain.Item, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if policy.Authorize(caller, policy.ActionDelete, item.OwnerID) != policy.Allow {
		return nil, s.deny(ctx, caller, policy.ActionDelete, id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.record(ctx, caller, policy.ActionDelete, id, "allowed")
	s.logger.Info().Str("item_id", id).Msg("item deleted")
	return item, nil
}

// deny records the denial for the audit trail and returns ErrPermissionDenied.
func (s *ItemService) deny(ctx context.Context, caller policy.Caller, action policy.Action, itemID string) error {
	metrics.PolicyDenialsTotal.WithLabelValues(action.String()).Inc()
	s.record(ctx, caller, action, itemID, "denied")
	s.logger.Warn().
		Str("actor_id", caller.ID).
		Str("role", caller.Role.String()).
		Str("action", action.String()).
		Str("item_id", itemID).
		Msg("permission denied")
	return domain.ErrPermissionDenied
}

func (s *ItemService) invalid(caller policy.Caller, action policy.Action, err error) error {
	var fe *validation.FieldError
	if errors.As(err, &fe) {
		metrics.ValidationFailuresTotal.WithLabelValues(fe.Field).Inc()
		s.logger.Debug().
			Str("actor_id", caller.ID).
			Str("action", action.String()).
			Str("field", fe.Field).
			Msg("validation failed")
	}
	return err
}

func (s *ItemService) record(ctx context.Context, caller policy.Caller, action policy.Action, itemID, outcome string) {
	if s.audit == nil {
		return
	}
	entry := ports.AuditEntry{
		ActorID:   caller.ID,
		ActorRole: caller.Role.String(),
		Action:    action.String(),
		ItemID:    itemID,
		Outcome:   outcome,
		Timestamp: time.Now().UTC(),
	}
	if err := s.audit.Record(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("action", entry.Action).Msg("failed to record audit entry")
	}
}

func (s *ItemService) userFinder() validation.UserFinder {
	return userFinder{repo: s.users}
}

// userFinder adapts AuthRepository to the validation layer's owner check.
type userFinder struct {
	repo ports.AuthRepository
}

func (f userFinder) UserExists(ctx context.Context, id string) (bool, error) {
	_, err := f.repo.FindByID(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	return false, err
}
