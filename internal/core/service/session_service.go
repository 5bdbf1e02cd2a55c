package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/finhub/console/internal/core/domain"
	"github.com/finhub/console/internal/core/ports"
)

// SessionService owns the session-scoped current user. It is the only writer
// of the session cache; gates and handlers only read what it returns.
type SessionService struct {
	repo   ports.UserRepository
	cache  ports.SessionCache
	ttl    time.Duration
	logger zerolog.Logger
}

func NewSessionService(repo ports.UserRepository, cache ports.SessionCache, ttl time.Duration, logger zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &SessionService{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// Current returns the cached current user, loading it from the repository on
// a miss. A cache outage degrades to a repository read.
func (s *SessionService) Current(ctx context.Context, userID string) (domain.CurrentUser, error) {
	if userID == "" {
		return domain.CurrentUser{}, domain.ErrSessionNotFound
	}

	if s.cache != nil {
		cu, err := s.cache.Get(ctx, userID)
		switch {
		case err == nil:
			return *cu, nil
		case !errors.Is(err, domain.ErrSessionNotFound):
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("session cache read failed")
		}
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return domain.CurrentUser{}, err
	}
	cu := user.Current()

	if s.cache != nil {
		if err := s.cache.Set(ctx, cu, s.ttl); err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("session cache write failed")
		}
	}
	return cu, nil
}

// Invalidate drops the cached entry so the next request re-fetches the user.
// Invalidating a user with no cached entry is not an error.
func (s *SessionService) Invalidate(ctx context.Context, userID string) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Delete(ctx, userID); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}
	return nil
}
