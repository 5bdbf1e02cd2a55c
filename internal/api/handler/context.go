package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/finhub/console/internal/api/middleware"
	"github.com/finhub/console/internal/core/domain"
)

// currentUser returns the session user attached by the Session middleware.
// A missing user means the route was mounted without the auth chain; it is
// rejected with 401 rather than served anonymously.
func currentUser(c echo.Context) (domain.CurrentUser, error) {
	u, ok := middleware.SessionFrom(c).User()
	if !ok {
		return domain.CurrentUser{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return u, nil
}
