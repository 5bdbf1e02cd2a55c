package ports

import (
	"context"

	"github.com/finhub/console/internal/core/domain"
)

// RegisterInput carries the fields accepted from public self-registration.
// Role may only name the default role; anything else is ErrForbidden.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, userID string) error
}

// SessionService resolves the current user for an authenticated request.
type SessionService interface {
	Current(ctx context.Context, userID string) (domain.CurrentUser, error)
	Invalidate(ctx context.Context, userID string) error
}
