package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/finhub/console/internal/core/domain"
)

func TestPageHandler_Dashboard(t *testing.T) {
	e := newTestEcho()
	handler := NewPageHandler()

	c, rec := newRequest(e, http.MethodGet, "/ui/dashboard", nil)
	signIn(c, domain.CurrentUser{ID: "u1", Username: "fay", Role: domain.RoleFinanceManager, IsActive: true})

	if err := handler.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextHTML) {
		t.Fatalf("expected html content type, got %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "New budget") {
		t.Fatalf("finance manager should see the budget.create action")
	}
	if strings.Contains(body, "Restore backup") {
		t.Fatalf("finance manager must not see backup restore")
	}
}

func TestPageHandler_Dashboard_UnresolvedSessionHidesProtectedContent(t *testing.T) {
	e := newTestEcho()
	handler := NewPageHandler()

	c, rec := newRequest(e, http.MethodGet, "/ui/dashboard", nil)

	if err := handler.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	for _, protected := range []string{"New budget", "Manage users", "Edit profile"} {
		if strings.Contains(body, protected) {
			t.Fatalf("unresolved session rendered %q", protected)
		}
	}
}

func TestPageHandler_Section(t *testing.T) {
	e := newTestEcho()
	handler := NewPageHandler()

	c, rec := newRequest(e, http.MethodGet, "/ui/backups", nil)
	signIn(c, domain.CurrentUser{ID: "adm", Username: "ada", Role: domain.RoleAdmin, IsActive: true})

	if err := handler.Section("backups")(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Restore backup") {
		t.Fatalf("admin should see backup restore")
	}
	if strings.Contains(body, "Delete backup") {
		t.Fatalf("only super_admin may delete backups")
	}
}

func TestPageHandler_Section_UnknownKey(t *testing.T) {
	e := newTestEcho()
	handler := NewPageHandler()

	c, _ := newRequest(e, http.MethodGet, "/ui/nowhere", nil)
	signIn(c, domain.CurrentUser{ID: "adm", Role: domain.RoleAdmin, IsActive: true})

	if code := httpCode(t, handler.Section("nowhere")(c)); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}
