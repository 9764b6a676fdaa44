package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"vradmin/config"
	"vradmin/internal/domain/constants"
	"vradmin/internal/domain/lifecycle"
	"vradmin/internal/infra/metrics"
	"vradmin/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// developModels are auto-migrated when running with env=develop. Other
// environments are migrated out of band.
var developModels = []any{
	&model.AdminNotificationModel{},
	&model.TodoModel{},
	&model.AdminDeviceModel{},
}

type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Registry
}

// New opens the dashboard database holding notifications, todos and admin
// devices. Pool statistics are exported as vradmin_db_* metrics.
func New(params Params) (*gorm.DB, error) {
	cfg := params.Config
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}
	logger := params.Logger.With(slog.String("component", "postgres"))

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	db = db.Session(&gorm.Session{
		// Multi-statement work goes through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, cfg),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "postgres sql.DB")
	}
	if err := params.Metrics.Register(collectors.NewDBStatsCollector(sqlDB, "vradmin")); err != nil {
		return nil, errors.Wrap(err, "register postgres pool metrics")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "ping postgres")
			}
			if cfg.Env.Env == constants.EnvDevelop {
				if err := db.WithContext(ctx).AutoMigrate(developModels...); err != nil {
					return errors.Wrap(err, "migrate development schema")
				}
				logger.Info("Development schema migrated", slog.Int("models", len(developModels)))
			}

			go watchPool(watchCtx, logger, sqlDB)

			return nil
		},
		OnStop: func(context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolWait is the connection wait accumulated between two pool snapshots.
type poolWait struct {
	waits int64
	total time.Duration
}

func waitBetween(prev, cur sql.DBStats) poolWait {
	return poolWait{waits: cur.WaitCount - prev.WaitCount, total: cur.WaitDuration - prev.WaitDuration}
}

func (w poolWait) average() time.Duration {
	if w.waits <= 0 {
		return 0
	}

	return w.total / time.Duration(w.waits)
}

// watchPool warns when requests queued noticeably for a connection since the
// previous check; the counters themselves are on the metrics endpoint.
func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolCheckInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if w := waitBetween(prev, cur); w.total >= poolWaitWarnAfter {
				logger.Warn("Postgres pool saturated",
					slog.Int64("waits", w.waits),
					slog.Duration("waited", w.total),
					slog.Duration("avg_wait", w.average()),
					slog.Int("in_use", cur.InUse),
					slog.Int("max_open", cur.MaxOpenConnections),
				)
			}
			prev = cur
		}
	}
}
