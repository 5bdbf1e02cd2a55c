// Package gate provides the two render-time access primitives used by every
// console page: PermissionGate for (resource, action) pairs and ComponentGate
// for component ids. Both resolve against a Session that the caller passes in
// explicitly; nothing here reads global state or performs I/O.
package gate

import (
	"context"

	"github.com/finhub/console/internal/core/access"
	"github.com/finhub/console/internal/core/domain"
)

// State is the per-gate resolution.
type State int

const (
	// StateUnresolved means the session user is not loaded yet.
	StateUnresolved State = iota
	StateGranted
	StateDenied
)

func (s State) String() string {
	switch s {
	case StateGranted:
		return "granted"
	case StateDenied:
		return "denied"
	default:
		return "unresolved"
	}
}

var defaultEvaluator = access.NewEvaluator(access.Default())

// Session is the read-only view of the current user a page renders against.
// The zero value is an unresolved session.
type Session struct {
	user      *domain.CurrentUser
	evaluator *access.Evaluator
}

// NewSession binds user to evaluator. A nil user yields an unresolved session;
// a nil evaluator uses the console table.
func NewSession(evaluator *access.Evaluator, user *domain.CurrentUser) Session {
	if evaluator == nil {
		evaluator = defaultEvaluator
	}
	if user == nil {
		return Session{evaluator: evaluator}
	}
	u := *user
	return Session{user: &u, evaluator: evaluator}
}

// Unresolved returns a session with no user.
func Unresolved() Session { return Session{} }

// User returns the session user and whether one is loaded.
func (s Session) User() (domain.CurrentUser, bool) {
	if s.user == nil {
		return domain.CurrentUser{}, false
	}
	return *s.user, true
}

// Resolved reports whether the session user is loaded.
func (s Session) Resolved() bool { return s.user != nil }

// Decide resolves c for the session user. Inactive users are denied everything.
func (s Session) Decide(c access.Capability) State {
	if s.user == nil {
		return StateUnresolved
	}
	if !s.user.IsActive {
		return StateDenied
	}
	ev := s.evaluator
	if ev == nil {
		ev = defaultEvaluator
	}
	if ev.IsAllowed(s.user.Role, c) {
		return StateGranted
	}
	return StateDenied
}

// Can reports whether c resolves to StateGranted.
func (s Session) Can(c access.Capability) bool {
	return s.Decide(c) == StateGranted
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session stored on ctx, or an unresolved session.
func FromContext(ctx context.Context) Session {
	s, ok := ctx.Value(sessionKey{}).(Session)
	if !ok {
		return Unresolved()
	}
	return s
}
