package storage

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
)

type storageConfig interface {
	Driver() string
	Path() string
	PostgresDSN() string
}

// NewFromConfig opens the configured persister and loads a Store on top of it.
func NewFromConfig(ctx context.Context, cfg storageConfig, opts ...Option) (*Store, error) {
	logger.Info("opening expense storage", zap.String("driver", cfg.Driver()), zap.String("path", cfg.Path()))

	var (
		p   persister
		err error
	)
	switch cfg.Driver() {
	case config.DriverJSON:
		p = NewJSONStorage(cfg.Path())
	case config.DriverSQLite:
		p, err = NewSQLiteStorage(ctx, cfg.Path())
	case config.DriverPostgres:
		p, err = NewPostgresStorage(ctx, cfg)
	case config.DriverMemory:
		p = NewInMemStorage()
	default:
		return nil, errors.Errorf("unknown storage driver %q", cfg.Driver())
	}
	if err != nil {
		return nil, errors.Wrap(err, "open storage")
	}

	store, err := New(ctx, p, opts...)
	if err != nil {
		if c, ok := p.(interface{ Close() error }); ok {
			_ = c.Close()
		}
		return nil, err
	}
	return store, nil
}
