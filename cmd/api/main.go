package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/azkaafiq/consultant-api/config"
	_ "github.com/azkaafiq/consultant-api/docs" // Important for Swagger
	v1 "github.com/azkaafiq/consultant-api/internal/delivery/http/v1"
	"github.com/azkaafiq/consultant-api/internal/domain"
	"github.com/azkaafiq/consultant-api/internal/repository/postgres"
	redislock "github.com/azkaafiq/consultant-api/internal/repository/redis"
	"github.com/azkaafiq/consultant-api/internal/usecase"
	"github.com/azkaafiq/consultant-api/pkg/database"
	"github.com/azkaafiq/consultant-api/pkg/logger"
	"github.com/azkaafiq/consultant-api/pkg/redis"
	"github.com/azkaafiq/consultant-api/pkg/validation"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Consultant Profile API
// @version         1.0
// @description     Consultant profiles with work experience, education and application documents.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting consultant api", "port", cfg.Port, "read_strategy", cfg.ProfileReadStrategy)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.PoolOptions{
		MaxConns:       cfg.DBMaxConns,
		MinConns:       cfg.DBMinConns,
		SimpleProtocol: cfg.DBSimpleProtocol,
	})
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.DBAutoMigrate {
		if err := database.RunMigrations(ctx, dbPool, database.Migrations); err != nil {
			logger.Log.Error("Failed to apply migrations", "error", err)
			os.Exit(1)
		}
	}

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	redisClient, err = redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Warn("Redis not configured, using in-memory locks and rate limits")
	case err != nil:
		logger.Log.Warn("Redis unavailable, using in-memory locks and rate limits", "error", err)
	default:
		defer redisClient.Close()
	}

	// 5. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool, postgres.ReadStrategy(cfg.ProfileReadStrategy))
	adminRepo := postgres.NewAdminRepository(dbPool)
	profileLocker := redislock.NewProfileLocker(redisClient, redislock.LockOptions{
		TTL:        cfg.ProfileLockTTL,
		FailClosed: cfg.ProfileLockFailClosed,
	})

	// 6. Setup UseCases
	profileUC := usecase.NewProfileUsecase(profileRepo, profileLocker, validation.New())
	adminUC := usecase.NewAdminUsecase(adminRepo)
	healthUC := usecase.NewHealthUsecase(map[string]domain.Pinger{
		"database": dbPool,
		"redis":    redis.Pinger{Client: redisClient},
	}, "database")

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC: profileUC,
		AdminUC:   adminUC,
		HealthUC:  healthUC,
		Redis:     redisClient,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
