package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/digitalbuddiesspune/stylishtouches-sub001/controllers"
	"github.com/digitalbuddiesspune/stylishtouches-sub001/database"
	"github.com/digitalbuddiesspune/stylishtouches-sub001/logger"
	"github.com/digitalbuddiesspune/stylishtouches-sub001/repository"
	"github.com/digitalbuddiesspune/stylishtouches-sub001/routes"
	"github.com/digitalbuddiesspune/stylishtouches-sub001/services"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	logger.Initialize(os.Getenv("APP_ENV"))
	defer logger.Log.Sync()

	cfg, err := LoadConfig()
	if err != nil {
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	if err := database.ConnectWithConfig(cfg.MongoURL, cfg.DBName); err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		zap.L().Warn("Failed to parse REDIS_URL, falling back to default", zap.Error(err))
		redisOpts = &redis.Options{Addr: "redis:6379", DB: 0}
	}
	redisClient := redis.NewClient(redisOpts)

	// Dependency injection: store -> service -> controller.
	store := repository.NewMongoFamilyStore(database.DB)
	catalogService := services.NewCatalogService(store, cfg.FanoutTimeout, zap.L())
	catalogController := controllers.NewCatalogController(catalogService, redisClient)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	// Request timeout middleware.
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), controllers.DefaultContextTimeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.RegisterRoutes(r, catalogController)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Catalog Service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down Catalog Service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		zap.L().Error("Failed to close Redis", zap.Error(err))
	}
	if err := database.Close(); err != nil {
		zap.L().Error("Failed to close MongoDB", zap.Error(err))
	}

	zap.L().Info("Catalog Service stopped gracefully")
}
