package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/finhub/console/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users    map[string]*domain.User
	findByID int
	listErr  error
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = cloneUser(u)
	}
	return r
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Username
	}
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.findByID++
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneUser(r.users[id]))
	}
	return out, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id string, role domain.Role) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *stubUserRepo) SetActive(_ context.Context, id string, active bool) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsActive = active
	return nil
}

// ---------------------------------------------------------------------------
// In-memory session cache
// ---------------------------------------------------------------------------

type stubSessionCache struct {
	entries map[string]domain.CurrentUser
	getErr  error
	deleted []string
}

func newStubSessionCache() *stubSessionCache {
	return &stubSessionCache{entries: make(map[string]domain.CurrentUser)}
}

func (c *stubSessionCache) Get(_ context.Context, userID string) (*domain.CurrentUser, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	cu, ok := c.entries[userID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &cu, nil
}

func (c *stubSessionCache) Set(_ context.Context, user domain.CurrentUser, _ time.Duration) error {
	c.entries[user.ID] = user
	return nil
}

func (c *stubSessionCache) Delete(_ context.Context, userID string) error {
	c.deleted = append(c.deleted, userID)
	if _, ok := c.entries[userID]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(c.entries, userID)
	return nil
}

var errCacheDown = errors.New("cache down")
