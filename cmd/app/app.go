package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/standops/stand-status-api/internal/api"
	"github.com/standops/stand-status-api/internal/config"
	"github.com/standops/stand-status-api/internal/db"
	"github.com/standops/stand-status-api/internal/logger"
	"github.com/standops/stand-status-api/internal/repository"
	"github.com/standops/stand-status-api/internal/repository/dao"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	config.Watch()

	store, err := openStore(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize store -> %w", err)
	}
	defer store.Close()

	if err = store.Bootstrap(context.Background()); err != nil {
		return fmt.Errorf("failed to bootstrap store -> %w", err)
	}

	s := api.NewServer(conf, store)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

// openStore picks the persistence backend from config: the embedded SQLite
// file or the remote Postgres database. DATABASE_URL overrides the
// Postgres connection settings (hosted environments inject it).
func openStore(conf *config.AppConfig) (repository.Store, error) {
	switch conf.Storage.Driver {
	case config.StorageDriverSQLite:
		sqlDB, err := db.OpenSQLite(conf.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("db.OpenSQLite -> %w", err)
		}
		return dao.NewSQLiteStore(sqlDB), nil

	case config.StorageDriverPostgres:
		if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
			gormDB, err := db.OpenPostgresWithURL(dbURL)
			if err != nil {
				return nil, fmt.Errorf("db.OpenPostgresWithURL -> %w", err)
			}
			return dao.NewPostgresStore(gormDB), nil
		}
		gormDB, err := db.OpenPostgres(conf.Postgres)
		if err != nil {
			return nil, fmt.Errorf("db.OpenPostgres -> %w", err)
		}
		return dao.NewPostgresStore(gormDB), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}
}
