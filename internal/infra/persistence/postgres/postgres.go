// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"moa/config"
	"moa/internal/domain/lifecycle"
	"moa/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval = 10 * time.Second
	// A join storm on a popular group can exhaust the pool quickly;
	// warn once connections in use cross this share of the maximum.
	poolSaturationWarnRatio = 0.8
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates PostgreSQL client mapping
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Group mutations run under txManager.Execute; the implicit
		// per-statement transaction only adds round trips on reads.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go watchPool(watchCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// watchPool periodically samples connection pool statistics and warns
// when the pool saturates or callers start queueing for connections.
func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolWatchInterval)
	defer ticker.Stop()

	var lastWaitCount int64
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sqlDB.Stats()

			saturated := stats.MaxOpenConnections > 0 &&
				float64(stats.InUse) >= poolSaturationWarnRatio*float64(stats.MaxOpenConnections)
			queued := stats.WaitCount > lastWaitCount
			lastWaitCount = stats.WaitCount

			if !saturated && !queued {
				continue
			}

			logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool under pressure",
				slog.Int("inUseConns", stats.InUse),
				slog.Int("idleConns", stats.Idle),
				slog.Int("maxOpenConns", stats.MaxOpenConnections),
				slog.Int64("waitCountTotal", stats.WaitCount),
				slog.Duration("waitDurationTotal", stats.WaitDuration),
			)
		}
	}
}
