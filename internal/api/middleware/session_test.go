package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/finhub/console/internal/core/access"
	"github.com/finhub/console/internal/core/domain"
	"github.com/finhub/console/internal/ui/gate"
)

type stubSessions struct {
	users map[string]domain.CurrentUser
	err   error
}

func (s *stubSessions) Current(_ context.Context, userID string) (domain.CurrentUser, error) {
	if s.err != nil {
		return domain.CurrentUser{}, s.err
	}
	u, ok := s.users[userID]
	if !ok {
		return domain.CurrentUser{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubSessions) Invalidate(context.Context, string) error { return nil }

func newContext(userID string) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set(CtxUserID, userID)
	}
	return c, rec, e
}

func TestSessionMiddleware_AttachesSession(t *testing.T) {
	sessions := &stubSessions{users: map[string]domain.CurrentUser{
		"u1": {ID: "u1", Role: domain.RoleAccountant, IsActive: true},
	}}
	c, rec, _ := newContext("u1")

	handler := Session(sessions, access.NewEvaluator(access.Default()))(func(c echo.Context) error {
		s := SessionFrom(c)
		if !s.Resolved() {
			t.Fatalf("expected resolved session")
		}
		if !gate.FromContext(c.Request().Context()).Resolved() {
			t.Fatalf("expected session on request context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSessionMiddleware_Errors(t *testing.T) {
	cases := []struct {
		name     string
		userID   string
		sessions *stubSessions
		want     int
	}{
		{"no subject", "", &stubSessions{}, http.StatusUnauthorized},
		{"unknown user", "ghost", &stubSessions{}, http.StatusUnauthorized},
		{"backend failure", "u1", &stubSessions{err: errors.New("boom")}, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec, e := newContext(tc.userID)
			handler := Session(tc.sessions, nil)(func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})
			if err := handler(c); err != nil {
				e.HTTPErrorHandler(err, c)
			}
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestSessionFrom_Missing(t *testing.T) {
	c, _, _ := newContext("")
	if SessionFrom(c).Resolved() {
		t.Fatalf("expected unresolved session")
	}
}
