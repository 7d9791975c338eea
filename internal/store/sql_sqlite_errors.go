package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
// It inspects the extended result code returned by the go-sqlite3 driver.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// IsUniqueViolation implements [ErrorClassificator]. It attempts to unwrap
// err as a sqlite3.Error and matches the SQLITE_CONSTRAINT_UNIQUE and
// SQLITE_CONSTRAINT_PRIMARYKEY extended codes. Any other error yields false.
func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
