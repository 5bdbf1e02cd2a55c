package api

import (
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/finhub/console/docs"
	"github.com/finhub/console/internal/api/handler"
	"github.com/finhub/console/internal/api/middleware"
	"github.com/finhub/console/internal/core/access"
	"github.com/finhub/console/internal/core/ports"
	"github.com/finhub/console/internal/ui/pages"
)

// Dependencies are the collaborators the router mounts. Evaluator defaults to
// one over access.Default() when nil. Registry defaults to the process-wide
// prometheus registry.
type Dependencies struct {
	Auth      ports.AuthService
	Sessions  ports.SessionService
	Users     ports.UserService
	Evaluator *access.Evaluator
	Health    []handler.DependencyCheck
	Registry  *prometheus.Registry

	JWTSecret    string
	TokenTTL     time.Duration
	SecureCookie bool
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "console",
		Registerer: registerer,
	}))

	evaluator := deps.Evaluator
	if evaluator == nil {
		evaluator = access.NewEvaluator(access.Default())
	}

	authHandler := handler.NewAuthHandler(deps.Auth, evaluator.Table(), deps.TokenTTL, deps.SecureCookie)
	accessHandler := handler.NewAccessHandler(evaluator.Table())
	userHandler := handler.NewUserHandler(deps.Users)
	pageHandler := handler.NewPageHandler()

	authenticated := []echo.MiddlewareFunc{
		middleware.Auth(deps.JWTSecret),
		middleware.Session(deps.Sessions, evaluator),
	}

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, middleware.Auth(deps.JWTSecret))

	// --- API v1 ---
	v1 := e.Group("/v1", authenticated...)
	v1.GET("/me", accessHandler.Me)
	v1.GET("/access/check", accessHandler.Check)
	v1.GET("/access/capabilities", accessHandler.Capabilities,
		middleware.RequirePermission(access.ResourceRoles, access.ActionRead))

	users := v1.Group("/users")
	users.GET("", userHandler.List, middleware.RequirePermission(access.ResourceUsers, access.ActionRead))
	users.POST("", userHandler.Create, middleware.RequireComponent(access.CompUsersManage))
	users.PATCH("/:id/role", userHandler.AssignRole, middleware.RequireComponent(access.CompRolesAssign))
	users.PATCH("/:id/active", userHandler.SetActive, middleware.RequirePermission(access.ResourceUsers, access.ActionUpdate))

	// --- Server-rendered pages ---
	ui := e.Group("/ui", authenticated...)
	ui.GET("/dashboard", pageHandler.Dashboard)
	for _, sec := range pages.Sections() {
		ui.GET(strings.TrimPrefix(sec.Href, "/ui"), pageHandler.Section(sec.Key),
			middleware.RequirePermission(sec.Resource, access.ActionRead))
	}

	// --- Health checks (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Health...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
