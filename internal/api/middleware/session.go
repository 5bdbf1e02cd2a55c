package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/finhub/console/internal/core/access"
	"github.com/finhub/console/internal/core/domain"
	"github.com/finhub/console/internal/core/ports"
	"github.com/finhub/console/internal/ui/gate"
)

// Session resolves the current user for the authenticated subject and attaches
// a gate.Session to both echo.Context and the request context. It must run
// after Auth. The session role comes from the stored user, not the token, so
// role edits apply as soon as the cached entry is invalidated.
func Session(sessions ports.SessionService, evaluator *access.Evaluator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(CtxUserID).(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			cu, err := sessions.Current(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrSessionNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "session user not found")
				}
				return err
			}

			s := gate.NewSession(evaluator, &cu)
			c.Set(CtxSession, s)
			c.SetRequest(c.Request().WithContext(gate.WithSession(c.Request().Context(), s)))
			return next(c)
		}
	}
}
