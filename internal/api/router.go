package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/pizzahub/ordering-system/docs"
	"github.com/pizzahub/ordering-system/internal/api/handler"
	"github.com/pizzahub/ordering-system/internal/api/middleware"
	"github.com/pizzahub/ordering-system/internal/core/domain"
	"github.com/pizzahub/ordering-system/internal/core/service"
	"github.com/pizzahub/ordering-system/internal/infrastructure/config"
	"github.com/pizzahub/ordering-system/internal/infrastructure/db/postgres"
	redisdb "github.com/pizzahub/ordering-system/internal/infrastructure/db/redis"
	"github.com/pizzahub/ordering-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("pizzahub"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	dedup := redisdb.NewDedupChecker(rdb)

	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)
	catalogService := service.NewCatalogService(menuRepo, log)
	orderService := service.NewOrderService(orderRepo, menuRepo, dedup, log)
	statsService := service.NewStatsService(statsRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	menuHandler := handler.NewMenuHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	statsHandler := handler.NewStatsHandler(statsService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Public API routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/register", authHandler.Register)
	apiGroup.POST("/login", authHandler.Login)
	apiGroup.GET("/pizzas", menuHandler.List)

	// --- Authenticated API routes ---
	secured := apiGroup.Group("", authMiddleware)
	secured.POST("/orders", orderHandler.Create)
	secured.GET("/orders", orderHandler.List)
	secured.GET("/user", userHandler.Profile)
	secured.PUT("/user", userHandler.Update)
	secured.GET("/stats", statsHandler.Overview, middleware.RBAC(domain.RoleAdmin))

	// --- Operational endpoints ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
