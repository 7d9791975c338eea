package service

import (
	"context"

	"github.com/MKhiriev/go-book-keeper/models"
)

type UserService interface {
	// AddUser registers a new account. The plaintext password is hashed
	// before persistence and never stored.
	AddUser(ctx context.Context, user models.User) (models.User, error)

	// VerifyUser checks the supplied credentials against the stored hash.
	// Returns ErrNotVerified for an unknown username or a wrong password,
	// without distinguishing the two.
	VerifyUser(ctx context.Context, user models.User) error

	// ListUsers returns every stored account.
	ListUsers(ctx context.Context) ([]models.User, error)

	// DeleteAllUsers removes every account.
	DeleteAllUsers(ctx context.Context) error

	// DeleteUser removes the account with the given id and returns it.
	DeleteUser(ctx context.Context, id int64) (models.User, error)
}

type BookService interface {
	// AddBook adds a new catalog entry after validating required fields.
	AddBook(ctx context.Context, book models.Book) (models.Book, error)

	// GetAllBooks returns every catalog entry.
	GetAllBooks(ctx context.Context) ([]models.Book, error)

	// GetBook returns a single entry by id.
	GetBook(ctx context.Context, id int64) (models.Book, error)

	// FindBooksByTitle returns entries whose title matches exactly.
	FindBooksByTitle(ctx context.Context, title string) ([]models.Book, error)

	// FindBooksByAuthor returns entries whose author matches exactly.
	FindBooksByAuthor(ctx context.Context, author string) ([]models.Book, error)

	// FindBooksByGenre returns entries whose genre matches exactly.
	FindBooksByGenre(ctx context.Context, genre string) ([]models.Book, error)

	// UpdateBook applies a partial update and returns the resulting entry.
	UpdateBook(ctx context.Context, update models.BookUpdate) (models.Book, error)

	// DeleteBook removes the entry with the given id.
	DeleteBook(ctx context.Context, id int64) error
}
