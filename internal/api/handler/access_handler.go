package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/finhub/console/internal/api/middleware"
	"github.com/finhub/console/internal/core/access"
	"github.com/finhub/console/internal/core/domain"
	"github.com/finhub/console/internal/ui/gate"
)

// AccessHandler exposes the capability table and per-user decisions so
// clients can gate their own rendering without another round trip.
type AccessHandler struct {
	table *access.Table
}

func NewAccessHandler(table *access.Table) *AccessHandler {
	return &AccessHandler{table: table}
}

type meResponse struct {
	User         domain.CurrentUser  `json:"user"`
	Capabilities []access.Capability `json:"capabilities"`
}

type checkRequest struct {
	Resource  string `query:"resource" json:"resource" validate:"required_without=Component"`
	Action    string `query:"action" json:"action" validate:"required_with=Resource"`
	Component string `query:"component" json:"component"`
}

type checkResponse struct {
	Capability access.Capability `json:"capability"`
	Allowed    bool              `json:"allowed"`
	State      string            `json:"state"`
}

type tableEntry struct {
	Capability access.Capability `json:"capability"`
	Roles      []domain.Role     `json:"roles"`
}

// Me returns the session user and every capability the user holds.
//
// @Summary      Current user and capabilities
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/me [get]
func (h *AccessHandler) Me(c echo.Context) error {
	u, err := currentUser(c)
	if err != nil {
		return err
	}

	caps := []access.Capability{}
	if u.IsActive {
		caps = append(caps, h.table.CapabilitiesFor(u.Role)...)
	}
	return c.JSON(http.StatusOK, meResponse{User: u, Capabilities: caps})
}

// Check evaluates a single capability for the session user. Pass either
// component, or resource and action.
//
// @Summary      Check a capability
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Param        resource   query     string  false  "Resource (e.g. ROLES)"
// @Param        action     query     string  false  "Action (e.g. READ)"
// @Param        component  query     string  false  "Component id (e.g. budget.create)"
// @Success      200        {object}  checkResponse
// @Failure      400        {object}  map[string]string
// @Failure      401        {object}  map[string]string
// @Router       /v1/access/check [get]
func (h *AccessHandler) Check(c echo.Context) error {
	var req checkRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid query"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	capability := access.ComponentID(req.Component)
	if strings.TrimSpace(req.Component) == "" {
		capability = access.ResourceAction(access.Resource(req.Resource), access.Action(req.Action))
	}

	state := middleware.SessionFrom(c).Decide(capability)
	return c.JSON(http.StatusOK, checkResponse{
		Capability: capability,
		Allowed:    state == gate.StateGranted,
		State:      state.String(),
	})
}

// Capabilities lists the full table.
//
// @Summary      Capability table
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   tableEntry
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/access/capabilities [get]
func (h *AccessHandler) Capabilities(c echo.Context) error {
	entries := h.table.Entries()
	out := make([]tableEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, tableEntry{Capability: e.Capability, Roles: e.Roles})
	}
	return c.JSON(http.StatusOK, out)
}
