package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/finhub/console/internal/core/domain"
	"github.com/finhub/console/internal/core/ports"
)

// UserHandler serves the user and role administration endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Username  string `json:"username" validate:"required,min=2,max=64"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role,omitempty"`
	ManagerID string `json:"manager_id,omitempty"`
}

type assignRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type setActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type listUsersResponse struct {
	Data  []*domain.User `json:"data"`
	Total int            `json:"total"`
}

// List returns the users the caller may see.
//
// @Summary      List accessible users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	users, err := h.service.ListAccessible(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listUsersResponse{Data: users, Total: len(users)})
}

// Create provisions an account with an explicit role and manager.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), actor, ports.CreateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// AssignRole changes a user's role.
//
// @Summary      Assign a role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      assignRoleRequest  true  "New role"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/users/{id}/role [patch]
func (h *UserHandler) AssignRole(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req assignRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.AssignRole(c.Request().Context(), actor, c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// SetActive activates or deactivates a user.
//
// @Summary      Activate or deactivate a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "User id"
// @Param        body  body      setActiveRequest  true  "Activation flag"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/users/{id}/active [patch]
func (h *UserHandler) SetActive(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.SetActive(c.Request().Context(), actor, c.Param("id"), *req.Active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
