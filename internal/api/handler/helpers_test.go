package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/finhub/console/internal/api/middleware"
	"github.com/finhub/console/internal/core/access"
	"github.com/finhub/console/internal/core/domain"
	"github.com/finhub/console/internal/core/ports"
	"github.com/finhub/console/internal/ui/gate"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	logoutFn   func(ctx context.Context, userID string) error
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, userID string) error {
	return s.logoutFn(ctx, userID)
}

type stubUserService struct {
	listFn   func(ctx context.Context, actor domain.CurrentUser) ([]*domain.User, error)
	assignFn func(ctx context.Context, actor domain.CurrentUser, targetID, rawRole string) (*domain.User, error)
	activeFn func(ctx context.Context, actor domain.CurrentUser, targetID string, active bool) (*domain.User, error)
	createFn func(ctx context.Context, actor domain.CurrentUser, input ports.CreateUserInput) (*domain.User, error)
}

func (s *stubUserService) Create(ctx context.Context, actor domain.CurrentUser, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, actor, input)
}

func (s *stubUserService) ListAccessible(ctx context.Context, actor domain.CurrentUser) ([]*domain.User, error) {
	return s.listFn(ctx, actor)
}

func (s *stubUserService) AssignRole(ctx context.Context, actor domain.CurrentUser, targetID, rawRole string) (*domain.User, error) {
	return s.assignFn(ctx, actor, targetID, rawRole)
}

func (s *stubUserService) SetActive(ctx context.Context, actor domain.CurrentUser, targetID string, active bool) (*domain.User, error) {
	return s.activeFn(ctx, actor, targetID, active)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newRequest(e *echo.Echo, method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// signIn attaches a resolved session for user, as the Session middleware would.
func signIn(c echo.Context, user domain.CurrentUser) {
	s := gate.NewSession(access.NewEvaluator(access.Default()), &user)
	c.Set(middleware.CtxUserID, user.ID)
	c.Set(middleware.CtxSession, s)
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	return he.Code
}
