package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/fuelpos/internal/config"
	obslogger "github.com/smallbiznis/fuelpos/internal/observability/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module provides the gorm handle with a managed lifecycle: the store is
// opened once on start and released exactly once on stop.
var Module = fx.Module("db",
	fx.Provide(New),
)

// Open opens the sqlite store at path and verifies connectivity.
func Open(path string) (*gorm.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("database path is required")
	}

	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: obslogger.NewGormLogger(obslogger.DefaultGormLoggerConfig()),
	})
	if err != nil {
		return nil, fmt.Errorf("open store %q: %w", path, err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping store %q: %w", path, err)
	}

	return conn, nil
}

func New(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	conn, err := Open(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	log.Info("store opened", zap.String("path", cfg.DatabasePath))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = ctx
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			log.Info("closing store")
			return sqlDB.Close()
		},
	})

	return conn, nil
}
