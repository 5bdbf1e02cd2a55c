package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/finhub/console/internal/core/access"
	"github.com/finhub/console/internal/ui/gate"
)

// RequirePermission enforces a (resource, action) capability on a route.
func RequirePermission(resource access.Resource, action access.Action) echo.MiddlewareFunc {
	return require(access.ResourceAction(resource, action))
}

// RequireComponent enforces a component-id capability on a route.
func RequireComponent(componentID string) echo.MiddlewareFunc {
	return require(access.ComponentID(componentID))
}

// require uses the same Session.Decide as the render-time gates: unresolved
// sessions get 401, denied ones 403.
func require(c access.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ec echo.Context) error {
			switch SessionFrom(ec).Decide(c) {
			case gate.StateGranted:
				return next(ec)
			case gate.StateDenied:
				return ec.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			default:
				return ec.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
			}
		}
	}
}
