package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-keeper/internal/config"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
)

// Storages aggregates every repository the services depend on, together with
// the shared database handle used for lifecycle management (migrations,
// keepalive pings, shutdown).
type Storages struct {
	UserRepository UserRepository
	BookRepository BookRepository

	DB *DB
}

// NewStorages connects to the configured database backend, applies pending
// migrations, and constructs all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		BookRepository: NewBookRepository(db, log),
		DB:             db,
	}, nil
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}
