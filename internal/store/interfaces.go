package store

import (
	"context"

	"github.com/MKhiriev/go-book-keeper/models"
)

// UserRepository is the data-access layer for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with the
	// server-assigned ID. A username collision yields ErrUsernameTaken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves a user by exact username match.
	// Returns ErrUserNotFound if no row matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// GetAllUsers returns every stored user in storage order.
	GetAllUsers(ctx context.Context) ([]models.User, error)

	// DeleteAllUsers removes every user row.
	DeleteAllUsers(ctx context.Context) error

	// DeleteUser removes the user with the given id and returns the deleted
	// record. Returns ErrUserNotFound if no row matches.
	DeleteUser(ctx context.Context, id int64) (models.User, error)
}

// BookRepository is the data-access layer for catalog entries.
type BookRepository interface {
	// CreateBook persists a new book and returns it with the
	// server-assigned ID. A title collision yields ErrTitleTaken.
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)

	// GetAllBooks returns every stored book in storage order.
	GetAllBooks(ctx context.Context) ([]models.Book, error)

	// GetBook retrieves a book by id. Returns ErrBookNotFound if no row matches.
	GetBook(ctx context.Context, id int64) (models.Book, error)

	// FindBooksByTitle returns all books whose title matches exactly.
	FindBooksByTitle(ctx context.Context, title string) ([]models.Book, error)

	// FindBooksByAuthor returns all books whose author matches exactly.
	FindBooksByAuthor(ctx context.Context, author string) ([]models.Book, error)

	// FindBooksByGenre returns all books whose genre matches exactly.
	FindBooksByGenre(ctx context.Context, genre string) ([]models.Book, error)

	// UpdateBook applies the non-nil fields of update to the stored row and
	// returns the updated record. Returns ErrBookNotFound if no row matches,
	// ErrTitleTaken if the new title collides with another book.
	UpdateBook(ctx context.Context, update models.BookUpdate) (models.Book, error)

	// DeleteBook removes the book with the given id.
	// Returns ErrBookNotFound if no row matches.
	DeleteBook(ctx context.Context, id int64) error
}

// ErrorClassificator inspects driver-level errors so that repositories can
// translate them into domain sentinels without knowing which SQL backend is
// in use.
type ErrorClassificator interface {
	// IsUniqueViolation reports whether err was caused by a unique
	// constraint violation.
	IsUniqueViolation(err error) bool
}
