package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finhub/console/internal/api/metrics"
	"github.com/finhub/console/internal/core/domain"
)

const sessionKeyPrefix = "session:user:"

// SessionCache stores the session-scoped current user in Redis.
// Key format: session:user:<user_id>
type SessionCache struct {
	client *redis.Client
}

// NewSessionCache creates a SessionCache wrapping the given Redis client.
func NewSessionCache(client *redis.Client) *SessionCache {
	return &SessionCache{client: client}
}

// Get returns the cached user or domain.ErrSessionNotFound.
func (s *SessionCache) Get(ctx context.Context, userID string) (*domain.CurrentUser, error) {
	raw, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.SessionCacheTotal.WithLabelValues("miss").Inc()
			return nil, domain.ErrSessionNotFound
		}
		metrics.SessionCacheTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("session get: %w", err)
	}

	var cu domain.CurrentUser
	if err := json.Unmarshal(raw, &cu); err != nil {
		metrics.SessionCacheTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("session decode: %w", err)
	}
	metrics.SessionCacheTotal.WithLabelValues("hit").Inc()
	return &cu, nil
}

// Set stores user for ttl.
func (s *SessionCache) Set(ctx context.Context, user domain.CurrentUser, ttl time.Duration) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	return s.client.Set(ctx, s.key(user.ID), raw, ttl).Err()
}

// Delete drops the cached user. A missing key reports domain.ErrSessionNotFound.
func (s *SessionCache) Delete(ctx context.Context, userID string) error {
	n, err := s.client.Del(ctx, s.key(userID)).Result()
	if err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (s *SessionCache) key(userID string) string {
	return sessionKeyPrefix + userID
}
