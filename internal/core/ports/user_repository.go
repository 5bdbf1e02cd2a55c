package ports

import (
	"context"

	"github.com/finhub/console/internal/core/domain"
)

// UserRepository defines persistence operations for console users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	SetActive(ctx context.Context, id string, active bool) error
}
