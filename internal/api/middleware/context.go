package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/finhub/console/internal/ui/gate"
)

// Keys under which the middleware chain stores request identity on echo.Context.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
	CtxSession  = "session"
)

// SessionFrom returns the session attached by the Session middleware, or an
// unresolved session when the chain did not set one.
func SessionFrom(c echo.Context) gate.Session {
	if s, ok := c.Get(CtxSession).(gate.Session); ok {
		return s
	}
	return gate.Unresolved()
}
