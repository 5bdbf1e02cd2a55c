package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/finhub/console/internal/api/metrics"
	"github.com/finhub/console/internal/api/middleware"
	"github.com/finhub/console/internal/core/access"
	"github.com/finhub/console/internal/core/domain"
	"github.com/finhub/console/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	table       *access.Table
	tokenTTL    time.Duration
	secure      bool
}

// NewAuthHandler builds the auth endpoints. table resolves the capabilities
// returned on login and must be the one the route middleware decides with.
// secureCookie marks the session cookie Secure and should be true outside
// development.
func NewAuthHandler(authService ports.AuthService, table *access.Table, tokenTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, table: table, tokenTTL: tokenTTL, secure: secureCookie}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=2,max=64"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token        string              `json:"token,omitempty"`
	User         *domain.User        `json:"user,omitempty"`
	Capabilities []access.Capability `json:"capabilities,omitempty"`
}

// Register creates a new employee account. Self-registration cannot pick an
// elevated role or a manager; administrators use POST /v1/users for that.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user and returns a JWT token. The token is also set as
// the session cookie used by the HTML pages.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.tokenTTL),
	})

	return c.JSON(http.StatusOK, authResponse{
		Token:        token,
		User:         user,
		Capabilities: h.table.CapabilitiesFor(domain.NormalizeRole(string(user.Role))),
	})
}

// Logout drops the cached session user and clears the session cookie.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401   {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if err := h.authService.Logout(c.Request().Context(), userID); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		MaxAge:   -1,
	})
	return c.NoContent(http.StatusNoContent)
}

func loginResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return "inactive"
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	default:
		return "error"
	}
}
