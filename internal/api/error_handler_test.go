package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/finhub/console/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, `{"error":"user not found"}`},
		{"user exists", domain.ErrUserExists, http.StatusConflict, `{"error":"user already exists"}`},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, `{"error":"invalid credentials"}`},
		{"inactive", domain.ErrUserInactive, http.StatusForbidden, `{"error":"user is inactive"}`},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest, `{"error":"invalid role"}`},
		{"forbidden wrapped", fmt.Errorf("assign role: %w", domain.ErrForbidden), http.StatusForbidden, `{"error":"access forbidden"}`},
		{"session gone", domain.ErrSessionNotFound, http.StatusUnauthorized, `{"error":"session expired"}`},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "email is required"), http.StatusBadRequest, `{"error":"email is required"}`},
		{"unexpected", errors.New("mongo exploded"), http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop())(tt.err, c)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			if got := rec.Body.String(); got != tt.body+"\n" {
				t.Fatalf("unexpected body %q", got)
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusNoContent)

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrForbidden, c)

	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("committed response was modified: %d %q", rec.Code, rec.Body.String())
	}
}
