package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/finhub/console/internal/core/domain"
)

// SessionCookie carries the token for server-rendered pages.
const SessionCookie = "console_session"

// Auth validates the JWT and injects its claims into context. The token is read
// from the Authorization header, falling back to the session cookie. An empty
// secret rejects every request.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if jwtSecret == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			raw, err := tokenFrom(c)
			if err != nil {
				return err
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}
			role, _ := claims["role"].(string)

			c.Set(CtxUserID, sub)
			c.Set(CtxUsername, claims["username"])
			c.Set(CtxRole, domain.NormalizeRole(role))

			return next(c)
		}
	}
}

func tokenFrom(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		if ck, err := c.Cookie(SessionCookie); err == nil && ck.Value != "" {
			return ck.Value, nil
		}
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}
