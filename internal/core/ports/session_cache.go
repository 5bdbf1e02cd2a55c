package ports

import (
	"context"
	"time"

	"github.com/finhub/console/internal/core/domain"
)

// SessionCache holds the session-scoped current user between requests.
// Get returns domain.ErrSessionNotFound on a miss.
type SessionCache interface {
	Get(ctx context.Context, userID string) (*domain.CurrentUser, error)
	Set(ctx context.Context, user domain.CurrentUser, ttl time.Duration) error
	Delete(ctx context.Context, userID string) error
}
