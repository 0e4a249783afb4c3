package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vallespasiegos/catalog-system/internal/api/handler"
	"github.com/vallespasiegos/catalog-system/internal/api/middleware"
	"github.com/vallespasiegos/catalog-system/internal/core/domain"
	"github.com/vallespasiegos/catalog-system/internal/core/service"
	mongodb "github.com/vallespasiegos/catalog-system/internal/infrastructure/db/mongo"
	redisdb "github.com/vallespasiegos/catalog-system/internal/infrastructure/db/redis"
	"github.com/vallespasiegos/catalog-system/internal/infrastructure/http/handlers"
	"github.com/vallespasiegos/catalog-system/internal/realtime"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, hub *realtime.Hub, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	productCache := redisdb.NewProductCache(rdb, log)

	authService := service.NewAuthService(userRepo, jwtSecret, 0)
	productService := service.NewProductService(productRepo, productCache, log)
	chatService := service.NewChatService(messageRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	chatHandler := handler.NewChatHandler(chatService)

	authRequired := middleware.Auth(authService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Catalog routes (public reads, admin writes) ---
	e.GET("/api/productos", productHandler.List)
	e.GET("/api/productos/:id", productHandler.Get)
	e.POST("/api/productos", productHandler.Create, authRequired, adminOnly)
	e.PUT("/api/productos/:id", productHandler.Update, authRequired, adminOnly)
	e.DELETE("/api/productos/:id", productHandler.Delete, authRequired, adminOnly)

	// --- Chat ---
	e.GET("/api/chat", chatHandler.History, authRequired)
	e.GET("/ws/chat", realtime.ServeWS(hub, authService, chatService, log))

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
