// Package migrations applies the embedded schema migrations with goose.
// One migration set is kept per supported SQL dialect, because the
// auto-increment and type syntax differ between PostgreSQL and SQLite.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate runs all pending migrations for the given driver against db.
// Supported drivers are "pgx" (PostgreSQL) and "sqlite3".
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, err := migrationDir(driver)
	if err != nil {
		return err
	}

	sub, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error reading embedded files: %w", err)
	}
	goose.SetBaseFS(sub)

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationDir(driver string) (string, error) {
	switch driver {
	case "pgx":
		return "postgres", nil
	case "sqlite3":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("migration error: unsupported driver %q", driver)
	}
}
