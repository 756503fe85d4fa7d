package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/invenco/inventory-system/docs"
	"github.com/invenco/inventory-system/internal/api/handler"
	"github.com/invenco/inventory-system/internal/api/middleware"
	"github.com/invenco/inventory-system/internal/core/service"
	"github.com/invenco/inventory-system/internal/infrastructure/config"
	invmongo "github.com/invenco/inventory-system/internal/infrastructure/db/mongo"
	invredis "github.com/invenco/inventory-system/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with both surfaces registered. The two
// surfaces share one service pipeline and differ only in caller resolution:
// JWT bearer tokens for /v1, service API keys for the legacy /items paths.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	authRepo := invmongo.NewAuthRepository(db)
	itemRepo := invmongo.NewItemRepository(db)
	auditRepo := invmongo.NewAuditRepository(db)
	revocations := invredis.NewRevocationStore(rdb, cfg.TokenTTL)

	authService := service.NewAuthService(authRepo, revocations, cfg.JWTSecret, cfg.TokenTTL)
	itemService := service.NewItemService(itemRepo, authRepo, auditRepo, log)
	userService := service.NewUserService(authRepo)

	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService)
	dataHandler := handler.NewDataHandler(itemService)
	userHandler := handler.NewUserHandler(userService)

	// --- Auth routes (public) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Session surface: JWT-authenticated ---
	v1 := e.Group("/v1", middleware.Auth(cfg.JWTSecret, revocations))
	v1.GET("/items", itemHandler.List)
	v1.POST("/items", itemHandler.Create)
	v1.GET("/items/:id", itemHandler.Get)
	v1.PUT("/items/:id", itemHandler.Update)
	v1.DELETE("/items/:id", itemHandler.Delete)
	v1.GET("/users", userHandler.List)
	v1.POST("/auth/password", authHandler.ChangePassword)

	// --- Data surface: service credential, legacy paths and field names ---
	data := e.Group("/items", middleware.APIKey(authRepo))
	data.GET("", dataHandler.List)
	data.POST("", dataHandler.Create)
	data.GET("/:id", dataHandler.Get)
	data.PUT("/:id", dataHandler.Update)
	data.DELETE("/:id", dataHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
