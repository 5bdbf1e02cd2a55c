package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/finhub/console/internal/core/access"
	"github.com/finhub/console/internal/core/domain"
	"github.com/finhub/console/internal/core/ports"
)

// UserService implements the user and role administration operations.
type UserService struct {
	repo      ports.UserRepository
	sessions  ports.SessionService
	evaluator *access.Evaluator
	logger    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, sessions ports.SessionService, evaluator *access.Evaluator, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, sessions: sessions, evaluator: evaluator, logger: logger}
}

// AccessibleUserIDs returns the ids actor may see among users.
//
//	admin, super_admin, finance_manager → everyone
//	manager                             → self and direct reports
//	anyone else                         → self
//
// Inactive actors see nobody.
func AccessibleUserIDs(actor domain.CurrentUser, users []*domain.User) []string {
	if !actor.IsActive {
		return nil
	}

	var ids []string
	for _, u := range users {
		if canSee(actor, u) {
			ids = append(ids, u.ID)
		}
	}
	return ids
}

func canSee(actor domain.CurrentUser, u *domain.User) bool {
	if u.ID == actor.ID {
		return true
	}
	switch actor.Role {
	case domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleFinanceManager:
		return true
	case domain.RoleManager:
		return u.ManagerID != "" && u.ManagerID == actor.ID
	default:
		return false
	}
}

// ListAccessible returns the users actor is allowed to see, in repository order.
func (s *UserService) ListAccessible(ctx context.Context, actor domain.CurrentUser) ([]*domain.User, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	visible := make(map[string]struct{})
	for _, id := range AccessibleUserIDs(actor, all) {
		visible[id] = struct{}{}
	}

	out := make([]*domain.User, 0, len(visible))
	for _, u := range all {
		if _, ok := visible[u.ID]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// AssignRole changes targetID's role. Granting super_admin is reserved to
// super_admins. The target's cached session is dropped so their next request
// sees the new role.
func (s *UserService) AssignRole(ctx context.Context, actor domain.CurrentUser, targetID, rawRole string) (*domain.User, error) {
	if !s.allowed(actor, access.ComponentID(access.CompRolesAssign)) {
		return nil, domain.ErrForbidden
	}

	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleSuperAdmin && actor.Role != domain.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if domain.NormalizeRole(string(target.Role)) == domain.RoleSuperAdmin && actor.Role != domain.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}

	if err := s.repo.UpdateRole(ctx, targetID, role); err != nil {
		return nil, err
	}
	target.Role = role

	s.invalidate(ctx, targetID)
	s.logger.Info().
		Str("actor_id", actor.ID).
		Str("target_id", targetID).
		Str("role", role.String()).
		Msg("role assigned")
	return target, nil
}

// SetActive activates or deactivates targetID. Actors cannot deactivate
// themselves.
func (s *UserService) SetActive(ctx context.Context, actor domain.CurrentUser, targetID string, active bool) (*domain.User, error) {
	if !s.allowed(actor, access.ResourceAction(access.ResourceUsers, access.ActionUpdate)) {
		return nil, domain.ErrForbidden
	}
	if targetID == actor.ID && !active {
		return nil, domain.ErrForbidden
	}

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetActive(ctx, targetID, active); err != nil {
		return nil, err
	}
	target.IsActive = active

	s.invalidate(ctx, targetID)
	s.logger.Info().
		Str("actor_id", actor.ID).
		Str("target_id", targetID).
		Bool("active", active).
		Msg("user activation changed")
	return target, nil
}

// Create provisions an account on behalf of actor, who needs users.manage.
// Only super_admins may create super_admins. This is the only path that sets
// a manager, so a user cannot place themselves under someone else's team.
func (s *UserService) Create(ctx context.Context, actor domain.CurrentUser, input ports.CreateUserInput) (*domain.User, error) {
	if !s.allowed(actor, access.ComponentID(access.CompUsersManage)) {
		return nil, domain.ErrForbidden
	}

	role, err := parseRoleOrDefault(input.Role)
	if err != nil {
		return nil, err
	}
	if role == domain.RoleSuperAdmin && actor.Role != domain.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}

	user, err := newAccount(input.Username, input.Email, input.Password, role, input.ManagerID)
	if err != nil {
		return nil, err
	}
	if user.ManagerID != "" {
		if _, err := s.repo.FindByID(ctx, user.ManagerID); err != nil {
			return nil, err
		}
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("actor_id", actor.ID).
		Str("user_id", created.ID).
		Str("role", role.String()).
		Msg("user created")
	return created, nil
}

func (s *UserService) allowed(actor domain.CurrentUser, c access.Capability) bool {
	return actor.IsActive && s.evaluator.IsAllowed(actor.Role, c)
}

func (s *UserService) invalidate(ctx context.Context, userID string) {
	if s.sessions == nil {
		return
	}
	if err := s.sessions.Invalidate(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("session invalidation failed")
	}
}
