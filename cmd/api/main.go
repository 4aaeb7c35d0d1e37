package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/recipefy/backend/config"
	"github.com/recipefy/backend/internal/database"
	"github.com/recipefy/backend/internal/logger"
	"github.com/recipefy/backend/internal/metrics"
	"github.com/recipefy/backend/internal/router"
	"github.com/recipefy/backend/internal/server"
	"github.com/recipefy/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Development: !config.IsProduction(),
	})
	defer func() { _ = logg.Sync() }()

	if err := run(cfg, logg); err != nil {
		logg.Fatal("server error", zap.Error(err))
	}
	logg.Info("server stopped")
}

func run(cfg *config.Config, logg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg, logg)
	if err != nil {
		return err
	}
	if cfg.UsesSQLite() {
		if err := database.RunMigrations(db, cfg.MigrationsDir, logg); err != nil {
			return err
		}
	}

	redisClient, err := database.NewRedisClient(ctx, cfg, logg)
	if err != nil {
		logg.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	deps := router.Dependencies{
		DB:              db,
		Redis:           redisClient,
		MediaPrefix:     cfg.MediaPrefix,
		TokenValidator:  service.NewTokenService(cfg.JWTSecret),
		Metrics:         metrics.NewCollector(),
		Logger:          logg,
		FrontendOrigins: cfg.FrontendOrigins,
	}
	s3cfg, err := config.NewS3Config(ctx, cfg)
	switch {
	case err == nil:
		deps.Store = s3cfg
	case errors.Is(err, config.ErrStorageDisabled):
		logg.Info("media storage not configured, uploads disabled")
	default:
		return err
	}

	srv := server.New(cfg, router.SetupRouter(deps), logg)
	return srv.Run(ctx, 10*time.Second)
}
