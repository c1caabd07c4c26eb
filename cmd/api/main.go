package main

// @title CityStrata API
// @version 1.0.0
// @description City resource classification platform for emergency scenarios (Eilat case study).
// @description Exposes municipal resource inventories (lodging, institutions, dining, community
// @description facilities, statistical areas) as GeoJSON, with proximity search and an
// @description evacuation capacity-vs-need analysis.

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/citystrata-service/docs"
	"github.com/citystrata-service/internal/config"
	httpDelivery "github.com/citystrata-service/internal/delivery/http"
	"github.com/citystrata-service/internal/delivery/http/handler"
	"github.com/citystrata-service/internal/pkg/logger"
	"github.com/citystrata-service/internal/repository/cache"
	"github.com/citystrata-service/internal/repository/postgres"
	"github.com/citystrata-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting CityStrata API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Int("city_code", cfg.City.CityCode),
	)

	// 3. Connect to the spatial store. The pool is created once here and
	// closed once at shutdown; everything else receives the handle.
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	resourceRepo := postgres.NewResourceRepository(db, cfg.City.CityCode)
	evacuationRepo := postgres.NewEvacuationRepository(db, cfg.City.CityCode)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	resourceUC := usecase.NewResourceUseCase(
		resourceRepo,
		cacheRepo,
		log,
		cfg.Cache.CollectionCacheTTL,
	)

	nearbyUC := usecase.NewNearbyUseCase(
		resourceRepo,
		log,
		cfg.City,
	)

	evacuationUC := usecase.NewEvacuationUseCase(
		evacuationRepo,
		log,
		cfg.City,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	resourceHandler := handler.NewResourceHandler(resourceUC, log)
	nearbyHandler := handler.NewNearbyHandler(nearbyUC, log)
	evacuationHandler := handler.NewEvacuationHandler(evacuationUC, log)

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		resourceHandler,
		nearbyHandler,
		evacuationHandler,
		db,
		redisClient,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
