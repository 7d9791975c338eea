package store

import (
	"database/sql"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/migrations"
)

// DB wraps *sql.DB together with the driver name and a backend-specific
// error classifier so that repositories stay backend-agnostic.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the wrapped connection.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
