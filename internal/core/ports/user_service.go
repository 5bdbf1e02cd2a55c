package ports

import (
	"context"

	"github.com/finhub/console/internal/core/domain"
)

// UserService covers the user and role administration pages.
type UserService interface {
	// ListAccessible returns the users actor is allowed to see.
	ListAccessible(ctx context.Context, actor domain.CurrentUser) ([]*domain.User, error)
	AssignRole(ctx context.Context, actor domain.CurrentUser, targetID, rawRole string) (*domain.User, error)
	SetActive(ctx context.Context, actor domain.CurrentUser, targetID string, active bool) (*domain.User, error)
	// Create provisions an account with any role and manager on behalf of actor.
	Create(ctx context.Context, actor domain.CurrentUser, input CreateUserInput) (*domain.User, error)
}

// CreateUserInput carries the fields an administrator may set on a new account.
type CreateUserInput struct {
	Username  string
	Email     string
	Password  string
	Role      string
	ManagerID string
}
