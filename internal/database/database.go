// Package database opens the relational store and the optional Redis cache.
package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/recipefy/backend/config"
)

// New opens the configured database: an embedded sqlite file when
// DATABASE_URL uses the sqlite:// scheme, PostgreSQL otherwise.
func New(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	var (
		db  *gorm.DB
		err error
	)
	if cfg.UsesSQLite() {
		log.Info("opening sqlite database", zap.String("path", cfg.DSN()))
		db, err = gorm.Open(sqlite.Open(cfg.DSN()), gormCfg)
	} else {
		log.Info("connecting to postgres", zap.String("host", cfg.DBHost), zap.String("database", cfg.DBName))
		db, err = gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sql.DB: %w", err)
	}
	if cfg.UsesSQLite() {
		// sqlite serializes writers; a single connection also keeps :memory: shared
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	log.Info("database connected", zap.String("dialect", db.Dialector.Name()))
	return db, nil
}
