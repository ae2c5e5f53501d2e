package main

import (
	"context"                     // context package is needed for Redis and seeding
	"log"                         // log package is needed for logging
	"tokenfolio/internal/api"     // Custom package for API handlers
	"tokenfolio/internal/config"  // Custom package for configuration
	"tokenfolio/internal/db"      // Database connection and migration
	"tokenfolio/internal/service" // Domain service
	"tokenfolio/internal/storage" // Persistence stores
	"tokenfolio/internal/tokenize"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Pick the persistence store
	var store storage.Store
	switch cfg.StorageDriver {
	case config.DriverMySQL:
		gdb, err := db.Open(cfg.DSN())
		if err != nil {
			logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
		}
		if err := db.AutoMigrate(gdb); err != nil {
			logrus.Fatalf("migration failed: %v", err)
		}
		store = storage.NewGormStore(gdb)
	case config.DriverMemory:
		store = storage.NewMemStore()
	default:
		logrus.Fatalf("unknown storage driver: %q", cfg.StorageDriver)
	}

	svc := service.New(store)

	// Seed the demo portfolio when asked to
	if cfg.SeedDemoData {
		if err := storage.SeedDemoData(context.Background(), store); err != nil {
			logrus.Fatalf("failed to seed demo data: %v", err)
		}
		logrus.Info("Demo data seeded")
	}

	// Setup Redis client; an empty address disables caching entirely
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	}

	// Tokenization collaborators: simulated IPFS and chain backends
	pipeline := tokenize.NewPipeline(tokenize.NewSimulatedContentStore(), tokenize.NewSimulatedMinter(), svc)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.SetupRouter(svc, pipeline, redisClient, cfg.JWTSecret)

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
