package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"panel/config"
	"panel/internal/domain/lifecycle"
	"panel/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval   = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client used by every repository.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction. Multi-step
		// atomic operations go through txManager.Execute explicitly.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitorPool(monitorCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// monitorPool periodically samples connection-pool wait statistics so
// pool pressure shows up in the logs before it shows up as latency.
func monitorPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(poolMonitorInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDuration := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waitDelta == 0 {
				continue
			}

			attrs := []slog.Attr{
				slog.Int64("waitCountDelta", waitDelta),
				slog.Duration("waitDurationDelta", waitDuration),
				slog.Int("maxOpenConns", cur.MaxOpenConnections),
				slog.Int("openConns", cur.OpenConnections),
				slog.Int("inUseConns", cur.InUse),
				slog.Int("idleConns", cur.Idle),
			}
			level := slog.LevelDebug
			if waitDuration >= poolWaitWarnThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Postgres pool wait detected", attrs...)
		}
	}
}
