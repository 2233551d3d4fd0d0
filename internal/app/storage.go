package app

import (
	"ProjectTracker/internal/config"
	"ProjectTracker/internal/models"
	"ProjectTracker/internal/storage/jsonfile"
	"ProjectTracker/internal/storage/postgres"
	"ProjectTracker/internal/storage/sqlite"
	"ProjectTracker/pkg/logger"
	"context"
	"fmt"
)

type DocumentRepo interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
}

// OpenStorage returns the repo selected by cfg.Storage.Driver and a func
// releasing whatever it holds open.
func OpenStorage(ctx context.Context, cfg *config.Config, log logger.Log) (DocumentRepo, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		log.Info("using file storage", "path", cfg.Storage.DataFile)
		return jsonfile.NewStorage(cfg.Storage.DataFile), func() {}, nil

	case config.DriverSQLite:
		s, err := sqlite.NewStorage(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("using sqlite storage", "path", s.Path())
		return s, func() {
			if err := s.Close(); err != nil {
				log.ErrorErr("failed to close sqlite", err)
			}
		}, nil

	case config.DriverPostgres:
		pg, err := postgres.NewPostgresPool(ctx, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
		if err != nil {
			return nil, nil, err
		}
		repo := postgres.NewDocumentPostgres(pg.Pool)
		if err := repo.Migrate(ctx); err != nil {
			pg.Close()
			return nil, nil, err
		}
		log.Info("using postgres storage", "host", cfg.Postgres.Host, "db", cfg.Postgres.DBName)
		return repo, pg.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
