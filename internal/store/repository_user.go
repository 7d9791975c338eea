package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and deletion against the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with the server-assigned ID.
//
// The INSERT itself enforces the username uniqueness invariant through the
// unique constraint on the column, so there is no check-then-insert window.
//
// Error handling:
//   - unique constraint violation → [ErrUsernameTaken].
//   - Any other scan failure → wrapped in [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Password)

	var created models.User
	if err := row.Scan(&created.ID, &created.Username, &created.Password); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrUsernameTaken
		}

		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByUsername retrieves the user record whose username matches exactly.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - Any other scan failure → wrapped in [ErrScanningRow].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByUsername, username)

	if err := row.Scan(&found.ID, &found.Username, &found.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error scanning user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// GetAllUsers returns every stored user in storage order.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Password); err != nil {
			log.Err(err).Str("func", "*userRepository.GetAllUsers").Msg("error scanning user rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// DeleteAllUsers removes every user row in a single statement.
func (r *userRepository) DeleteAllUsers(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteAllUsers); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteAllUsers").Msg("error deleting users")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteUser removes the user with the given id and returns the deleted
// record so that callers can acknowledge the deletion by username.
//
// The DELETE ... RETURNING form makes lookup and removal a single atomic
// statement; an empty result set maps to [ErrUserNotFound].
func (r *userRepository) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var deleted models.User
	row := r.db.QueryRowContext(ctx, deleteUser, id)

	if err := row.Scan(&deleted.ID, &deleted.Username, &deleted.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return deleted, nil
}
