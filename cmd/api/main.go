package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ratecurves/internal/cache"
	"ratecurves/internal/config"
	"ratecurves/internal/database"
	"ratecurves/internal/handlers"
	"ratecurves/internal/logger"
	"ratecurves/internal/middleware"
	"ratecurves/internal/services"
	"ratecurves/internal/store"
	"ratecurves/internal/validator"

	_ "ratecurves/internal/docs" // Import swagger docs
)

// @title           Rate Curves API
// @version         1.0
// @description     Time-versioned interest-rate curves: structure, quotes, and day-over-day rolls.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Shared key required on mutating routes.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Store, optionally fronted by Redis
	var curveStore store.Store = store.NewGormStore(dbManager.DB())
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer func() { _ = rdb.Close() }()
		curveStore = cache.NewCachingStore(rdb, cfg.CacheTTL, curveStore, "curves")
		log.Infof("Caching curve listings in Redis at %s (ttl %s)", cfg.RedisAddr, cfg.CacheTTL)
	}
	if cfg.APIKey == "" {
		log.Warn("API_KEY is not set; mutating routes are open")
	}

	// Initialize services
	curveService := services.NewCurveService(curveStore, nil)
	quoteService := services.NewQuoteService(curveStore, nil)
	rollService := services.NewRollService(curveStore, nil)

	// Initialize handlers
	curveHandler := handlers.NewCurveHandler(curveService)
	quoteHandler := handlers.NewQuoteHandler(quoteService, rollService)

	validator.Register()

	// Initialize Gin router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.APIKeyHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	handlers.RegisterRoutes(router.Group("/api/v1"), curveHandler, quoteHandler, middleware.RequireAPIKey(cfg.APIKey))

	log.Infof("Starting rate curves server on port %s", cfg.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return router.Run(":" + cfg.Port)
}
