package service

import (
	"context"

	"github.com/invenco/inventory-system/internal/core/domain"
	"github.com/invenco/inventory-system/internal/core/policy"
	"github.com/invenco/inventory-system/internal/core/ports"
)

// UserService exposes identity-store reads behind the policy engine.
type UserService struct {
	repo ports.AuthRepository
}

func NewUserService(repo ports.AuthRepository) *UserService {
	return &UserService{repo: repo}
}

// ListUsers returns every user with its role. Denied for anyone without the
// view-users capability.
func (s *UserService) ListUsers(ctx context.Context, caller policy.Caller) ([]*domain.User, error) {
	if policy.Authorize(caller, policy.ActionViewUsers, "") != policy.Allow {
		return nil, domain.ErrPermissionDenied
	}
	return s.repo.List(ctx)
}
