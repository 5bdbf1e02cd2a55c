package handler

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/finhub/console/internal/api/middleware"
	"github.com/finhub/console/internal/ui/pages"
)

// PageHandler serves the server-rendered console pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Dashboard renders the landing page for the session user. The whole document
// is rendered before the status line is written, so a render error never
// leaves a partial page behind.
func (h *PageHandler) Dashboard(c echo.Context) error {
	return renderHTML(c, http.StatusOK, pages.Dashboard(middleware.SessionFrom(c)))
}

// Section returns a handler for the console area named key. Route guards
// decide who reaches it; the page gates its own actions.
func (h *PageHandler) Section(key string) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, ok := pages.Section(middleware.SessionFrom(c), key)
		if !ok {
			return echo.ErrNotFound
		}
		return renderHTML(c, http.StatusOK, page)
	}
}

func renderHTML(c echo.Context, status int, node g.Node) error {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}
