package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to create a new user
	// fails because a user with the same username already exists.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrTitleTaken is returned when an attempt to create or retitle a book
	// fails because a book with the same title already exists.
	ErrTitleTaken = errors.New("title already exists")

	// ErrBookNotFound is returned when a query expected to match at least
	// one book record produces an empty result set.
	ErrBookNotFound = errors.New("no book was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an update with no recognisable fields).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
