package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sirpyerre/merch-store-api/internal/api/handler"
	"github.com/sirpyerre/merch-store-api/internal/api/middleware"
	"github.com/sirpyerre/merch-store-api/internal/core/ports"
	"github.com/sirpyerre/merch-store-api/internal/core/service"
	healthhandlers "github.com/sirpyerre/merch-store-api/internal/infrastructure/http/handlers"
)

const tokenTTL = 7 * 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store ports.SnapshotStore, dedup ports.PurchaseDeduper, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("store"))

	// --- Dependencies ---
	authService := service.NewAuthService(store, jwtSecret, tokenTTL, log)
	catalogService := service.NewCatalogService(store, log)
	purchaseService := service.NewPurchaseService(store, dedup, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(catalogService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	authMiddleware := middleware.Auth(jwtSecret)

	// --- Public routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/register", authHandler.Register)
	apiGroup.POST("/login", authHandler.Login)
	apiGroup.GET("/products", productHandler.List)
	apiGroup.GET("/products/:id", productHandler.Get)

	// --- Protected routes ---
	apiGroup.GET("/user/profile", authHandler.Profile, authMiddleware)
	apiGroup.POST("/purchase", purchaseHandler.Create, authMiddleware)
	apiGroup.GET("/user/purchases", purchaseHandler.ListMine, authMiddleware)
	apiGroup.GET("/user/stats", purchaseHandler.Stats, authMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	readinessHandler := healthhandlers.NewReadinessHandler(store, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
