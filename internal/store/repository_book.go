package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/models"
)

// bookRepository is the SQL-backed implementation of [BookRepository].
// It handles catalog entry creation, lookup, partial update, and deletion
// against the "books" table.
type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBook persists a new book record and returns the fully populated
// [models.Book] with the server-assigned ID.
//
// The INSERT itself enforces the title uniqueness invariant through the
// unique constraint on the column, so there is no check-then-insert window.
//
// Error handling:
//   - unique constraint violation → [ErrTitleTaken].
//   - Any other scan failure → wrapped in [ErrScanningRow].
func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBook, book.Title, book.Author, book.Review, book.Genre)

	var created models.Book
	if err := row.Scan(&created.ID, &created.Title, &created.Author, &created.Review, &created.Genre); err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error inserting book")

		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.Book{}, ErrTitleTaken
		}

		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// GetAllBooks returns every stored book in storage order.
func (r *bookRepository) GetAllBooks(ctx context.Context) ([]models.Book, error) {
	return r.selectBooks(ctx, nil)
}

// GetBook retrieves a book by primary key.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrBookNotFound].
//   - Any other scan failure → wrapped in [ErrScanningRow].
func (r *bookRepository) GetBook(ctx context.Context, id int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBookByIDQuery(id)
	if err != nil {
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Book
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&found.ID, &found.Title, &found.Author, &found.Review, &found.Genre); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		log.Err(err).Str("func", "*bookRepository.GetBook").Msg("error scanning book row")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// FindBooksByTitle returns all books whose title matches exactly.
func (r *bookRepository) FindBooksByTitle(ctx context.Context, title string) ([]models.Book, error) {
	return r.selectBooks(ctx, sq.Eq{"title": title})
}

// FindBooksByAuthor returns all books whose author matches exactly.
func (r *bookRepository) FindBooksByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	return r.selectBooks(ctx, sq.Eq{"author": author})
}

// FindBooksByGenre returns all books whose genre matches exactly.
func (r *bookRepository) FindBooksByGenre(ctx context.Context, genre string) ([]models.Book, error) {
	return r.selectBooks(ctx, sq.Eq{"genre": genre})
}

// UpdateBook applies the non-nil fields of update to the stored row in a
// single UPDATE ... RETURNING statement and returns the updated record.
//
// An update that carries no fields degrades to a plain lookup, so callers
// get the current row back and absent ids still surface as not-found.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrBookNotFound].
//   - unique constraint violation (retitling onto an existing title) →
//     [ErrTitleTaken].
//   - Any other scan failure → wrapped in [ErrScanningRow].
func (r *bookRepository) UpdateBook(ctx context.Context, update models.BookUpdate) (models.Book, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.GetBook(ctx, update.ID)
	}

	query, args, err := buildUpdateBookQuery(update)
	if err != nil {
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Book
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&updated.ID, &updated.Title, &updated.Author, &updated.Review, &updated.Genre); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.Book{}, ErrTitleTaken
		}

		log.Err(err).Str("func", "*bookRepository.UpdateBook").Msg("error updating book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

// DeleteBook removes the book with the given id.
// A delete that affects zero rows maps to [ErrBookNotFound].
func (r *bookRepository) DeleteBook(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteBook, id)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("error deleting book")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}

// selectBooks runs a filtered (or unfiltered) SELECT over the books table.
func (r *bookRepository) selectBooks(ctx context.Context, filter sq.Eq) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBooksQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.selectBooks").Msg("error querying books")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.Review, &book.Genre); err != nil {
			log.Err(err).Str("func", "*bookRepository.selectBooks").Msg("error scanning book rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}
