package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/comisarias/novedades-api/docs"
	"github.com/comisarias/novedades-api/internal/api/handler"
	"github.com/comisarias/novedades-api/internal/api/middleware"
	"github.com/comisarias/novedades-api/internal/core/domain"
	"github.com/comisarias/novedades-api/internal/core/ports"
)

// Dependencies carries everything the router needs. Handlers are wired
// against ports, never against concrete stores, so tests can assemble the
// full HTTP surface on in-memory stubs.
type Dependencies struct {
	AuthService    ports.AuthService
	NovedadService ports.NovedadService
	TokenService   ports.TokenService

	// Mongo and Redis are only used by the readiness probe; when either is
	// nil the probe is not registered.
	Mongo *mongo.Database
	Redis *redis.Client

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// The per-route RBAC allow-lists below are the complete authorization policy;
// every role a route accepts is listed literally, admin included.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("novedades"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	userHandler := handler.NewUserHandler(deps.AuthService)
	novedadHandler := handler.NewNovedadHandler(deps.NovedadService)
	dashboardHandler := handler.NewDashboardHandler()

	auth := middleware.Auth(deps.TokenService)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "novedades backend running"})
	})
	e.POST("/login", authHandler.Login)

	// --- Novedades CRUD ---
	novedadRBAC := middleware.RBAC(domain.NovedadRoles...)
	e.GET("/novedades", novedadHandler.List, auth, novedadRBAC)
	e.POST("/novedades", novedadHandler.Create, auth, novedadRBAC)
	e.PUT("/novedades/:id", novedadHandler.Update, auth, novedadRBAC)
	e.DELETE("/novedades/:id", novedadHandler.Delete, auth, novedadRBAC)

	// --- User administration (admin only) ---
	adminRBAC := middleware.RBAC(domain.RoleAdmin)
	e.POST("/register", authHandler.Register, auth, adminRBAC)
	e.GET("/users", userHandler.List, auth, adminRBAC)
	e.DELETE("/users/:id", userHandler.Delete, auth, adminRBAC)

	// --- Dashboards ---
	e.GET("/admin-dashboard", dashboardHandler.Admin, auth, adminRBAC)
	e.GET("/user-dashboard", dashboardHandler.User, auth, middleware.RBAC(domain.RoleAdmin, domain.RoleUser))
	parteRBAC := middleware.RBAC(domain.ParteRoles...)
	e.GET("/novedades_parte", dashboardHandler.Parte, auth, parteRBAC)
	e.GET("/ver_novedades", dashboardHandler.VerNovedades, auth, parteRBAC)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if deps.Mongo != nil && deps.Redis != nil {
		readiness := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
		e.GET("/health/ready", readiness.Readiness)
	}

	return e
}
