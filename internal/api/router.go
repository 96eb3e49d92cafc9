package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/usermgmt/identity-service/internal/api/handler"
	"github.com/usermgmt/identity-service/internal/api/middleware"
	"github.com/usermgmt/identity-service/internal/core/domain"
	"github.com/usermgmt/identity-service/internal/core/ports"
	"github.com/usermgmt/identity-service/internal/core/service"
	mongostore "github.com/usermgmt/identity-service/internal/infrastructure/db/mongo"
	redisstore "github.com/usermgmt/identity-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	publisher ports.EventPublisher,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("identity"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	roleRepo := mongostore.NewRoleRepository(db)
	auditRepo := mongostore.NewAuditRepository(db)
	txRunner := mongostore.NewTxRunner(db.Client())
	cache := redisstore.NewProfileCache(rdb)

	tokenService := service.NewTokenService(jwtSecret, tokenTTL)
	authService := service.NewAuthService(userRepo, roleRepo, auditRepo, cache, publisher, tokenService, txRunner, log)
	roleService := service.NewRoleService(roleRepo, userRepo, auditRepo, cache, txRunner, log)
	userService := service.NewUserService(userRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	adminHandler := handler.NewAdminHandler(userService)

	authMiddleware := middleware.Auth(tokenService)
	adminOnly := middleware.RBAC(domain.AdminRoleName)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	users := e.Group("/users", authMiddleware)
	users.GET("/me", userHandler.Me)

	// --- Administrative routes ---
	admin := e.Group("/admin", authMiddleware, adminOnly)
	admin.POST("/roles", roleHandler.Create)
	admin.POST("/users/:id/roles", roleHandler.Assign)
	admin.GET("/stats", adminHandler.Stats)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
