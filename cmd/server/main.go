package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stayloop/stayloop/internal/config"
	"github.com/stayloop/stayloop/internal/database"
	"github.com/stayloop/stayloop/internal/facade"
	"github.com/stayloop/stayloop/internal/handler"
	"github.com/stayloop/stayloop/internal/middleware"
	"github.com/stayloop/stayloop/internal/tokenstore"
	"github.com/stayloop/stayloop/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatal("Failed to connect database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}
	logger.Log.Info("Database ready")

	// Redis backs the login rate limiter and the logout token denylist.
	// Both degrade gracefully when REDIS_URL is unset.
	var revoked *tokenstore.RevocationStore
	var loginLimiter gin.HandlerFunc
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Log.Fatal("Invalid REDIS_URL", zap.Error(err))
		}
		redisClient := redis.NewClient(opt)
		defer redisClient.Close()

		revoked = tokenstore.NewRevocationStore(redisClient)
		loginLimiter = middleware.NewRateLimiter(redisClient, middleware.RateLimiterConfig{
			MaxRequests: cfg.RateLimitMaxRequests,
			Window:      cfg.RateLimitWindow,
			BlockTime:   cfg.RateLimitBlockTime,
		}).Middleware()
		logger.Log.Info("Redis connected")
	}

	router := handler.NewRouter(handler.RouterDeps{
		Facade:       facade.NewGorm(db),
		JWTSecret:    cfg.JWTSecret,
		JWTExpiry:    cfg.JWTExpiry,
		Revoked:      revoked,
		LoginLimiter: loginLimiter,
		IsProduction: cfg.IsProduction(),
	})

	logger.Log.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(cfg.ServerPort); err != nil {
		logger.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
