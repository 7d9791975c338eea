package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-book-keeper/internal/logger"
	"github.com/MKhiriev/go-book-keeper/internal/store"
	"github.com/MKhiriev/go-book-keeper/internal/validators"
	"github.com/MKhiriev/go-book-keeper/models"
)

// bookService is the concrete implementation of BookService.
// It validates catalog payloads and delegates persistence to a BookRepository.
type bookService struct {
	bookRepository store.BookRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewBookService constructs a new BookService wired to the given
// BookRepository.
func NewBookService(bookRepository store.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		validator:      validators.NewBookValidator(),
		logger:         logger,
	}
}

// AddBook adds a new catalog entry.
//
// It validates that Title and Author are present and that the review fits the
// storage column, then delegates persistence to the BookRepository.
//
// Returns the persisted book (with a server-assigned ID) or:
//   - validators.ErrTitleRequired / validators.ErrAuthorRequired /
//     validators.ErrReviewTooLong on payload violations.
//   - A wrapped storage error if the repository call fails (e.g. title
//     already taken, see store.ErrTitleTaken).
func (s *bookService) AddBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, book); err != nil {
		log.Error().Str("title", book.Title).Msg("invalid book data provided")
		return models.Book{}, err
	}

	createdBook, err := s.bookRepository.CreateBook(ctx, book)
	if err != nil {
		log.Err(err).Str("title", book.Title).Msg("book creation ended with error")
		return models.Book{}, fmt.Errorf("book creation ended with error: %w", err)
	}

	return createdBook, nil
}

// GetAllBooks returns every catalog entry.
func (s *bookService) GetAllBooks(ctx context.Context) ([]models.Book, error) {
	books, err := s.bookRepository.GetAllBooks(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing books failed")
		return nil, fmt.Errorf("listing books failed: %w", err)
	}

	return books, nil
}

// GetBook returns a single entry by id.
// Returns a wrapped store.ErrBookNotFound if no such entry exists.
func (s *bookService) GetBook(ctx context.Context, id int64) (models.Book, error) {
	book, err := s.bookRepository.GetBook(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("book lookup failed")
		return models.Book{}, fmt.Errorf("book lookup failed: %w", err)
	}

	return book, nil
}

// FindBooksByTitle returns entries whose title matches exactly.
func (s *bookService) FindBooksByTitle(ctx context.Context, title string) ([]models.Book, error) {
	books, err := s.bookRepository.FindBooksByTitle(ctx, title)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("title", title).Msg("book search by title failed")
		return nil, fmt.Errorf("book search by title failed: %w", err)
	}

	return books, nil
}

// FindBooksByAuthor returns entries whose author matches exactly.
func (s *bookService) FindBooksByAuthor(ctx context.Context, author string) ([]models.Book, error) {
	books, err := s.bookRepository.FindBooksByAuthor(ctx, author)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("author", author).Msg("book search by author failed")
		return nil, fmt.Errorf("book search by author failed: %w", err)
	}

	return books, nil
}

// FindBooksByGenre returns entries whose genre matches exactly.
func (s *bookService) FindBooksByGenre(ctx context.Context, genre string) ([]models.Book, error) {
	books, err := s.bookRepository.FindBooksByGenre(ctx, genre)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("genre", genre).Msg("book search by genre failed")
		return nil, fmt.Errorf("book search by genre failed: %w", err)
	}

	return books, nil
}

// UpdateBook applies the non-nil fields of update to the stored entry and
// returns the result. An update that names no fields returns the entry
// unchanged.
//
// Returns validators.ErrReviewTooLong if the new review exceeds the cap, or
// a wrapped storage error (store.ErrBookNotFound, store.ErrTitleTaken).
func (s *bookService) UpdateBook(ctx context.Context, update models.BookUpdate) (models.Book, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Error().Int64("id", update.ID).Msg("invalid book update provided")
		return models.Book{}, err
	}

	updatedBook, err := s.bookRepository.UpdateBook(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", update.ID).Msg("book update ended with error")
		return models.Book{}, fmt.Errorf("book update ended with error: %w", err)
	}

	return updatedBook, nil
}

// DeleteBook removes the entry with the given id.
// Returns a wrapped store.ErrBookNotFound if no such entry exists.
func (s *bookService) DeleteBook(ctx context.Context, id int64) error {
	if err := s.bookRepository.DeleteBook(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("book deletion ended with error")
		return fmt.Errorf("book deletion ended with error: %w", err)
	}

	return nil
}
