// Package gormdb stores the person collection in a relational database
// through GORM. PostgreSQL serves production deployments and SQLite serves
// single-node installs and tests.
package gormdb

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"familytree/config"
	"familytree/internal/domain/lifecycle"
	"familytree/internal/errors"
	"familytree/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database selected by store.backend and ties its pool to the
// application lifecycle.
func New(params Params) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch params.Config.Store.Backend {
	case config.StorePostgres:
		db, err = pgLib.New(params.Config.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}
	case config.StoreSQLite:
		if params.Config.SQLite == nil || params.Config.SQLite.Path == "" {
			return nil, errors.New("sqlite.path is required for the sqlite backend")
		}
		db, err = gorm.Open(sqlite.Open(params.Config.SQLite.Path), &gorm.Config{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open SQLite database")
		}
	default:
		return nil, errors.Errorf("store backend %q is not served by gorm", params.Config.Store.Backend)
	}

	db, err = prepare(db, params.Logger, params.Config.Env.Debug, params.Config.Store.AutoMigrate)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}
	if params.Config.Store.Backend == config.StoreSQLite {
		// SQLite allows one writer; a single connection avoids lock errors.
		sqlDB.SetMaxOpenConns(1)
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// OpenSQLite opens a migrated SQLite database outside the fx graph, for the
// operator CLI and repository tests.
func OpenSQLite(path string, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	db, err = prepare(db, logger, false, true)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func prepare(db *gorm.DB, logger *slog.Logger, debug, migrate bool) (*gorm.DB, error) {
	// Surface driver unique violations as gorm.ErrDuplicatedKey.
	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{
		// Explicit transactions via txManager.Execute cover every multi-step write.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, debug),
	})

	if migrate {
		if err := db.AutoMigrate(&model.PersonModel{}); err != nil {
			return nil, errors.Wrap(err, "failed to migrate people table")
		}
	}

	return db, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "DB pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "DB pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
