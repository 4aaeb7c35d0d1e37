package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/recipefy/backend/config"
	"github.com/recipefy/backend/internal/database"
	"github.com/recipefy/backend/internal/logger"
)

func main() {
	dir := flag.String("dir", "", "directory holding .sql migrations (defaults to MIGRATIONS_DIR)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *dir != "" {
		cfg.MigrationsDir = *dir
	}

	logg := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer func() { _ = logg.Sync() }()

	db, err := database.New(cfg, logg)
	if err != nil {
		logg.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir, logg); err != nil {
		logg.Fatal("migration failed", zap.Error(err))
	}
	logg.Info("migrations complete", zap.String("dialect", db.Dialector.Name()))
}
