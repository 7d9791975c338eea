package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-book-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldTitle targets the unique title of a book.
	FieldTitle = "title"

	// FieldAuthor targets the author of a book.
	FieldAuthor = "author"

	// FieldReview targets the optional review text of a book.
	FieldReview = "review"
)

// MaxReviewLength is the maximum number of characters allowed in a review.
// Mirrors the VARCHAR(144) column constraint so that overlong input is
// rejected before it reaches the database.
const MaxReviewLength = 144

// bookValidator validates book payloads: required fields on creation and the
// review length cap on both creation and partial update.
type bookValidator struct{}

// NewBookValidator constructs a [Validator] for [models.Book] and
// [models.BookUpdate] values.
func NewBookValidator() Validator {
	return &bookValidator{}
}

// Validate checks the given value.
//
// Accepted value types:
//   - [models.Book] — full payload; all fields are checked unless a field
//     subset is given.
//   - [models.BookUpdate] — partial payload; only fields that are present
//     (non-nil) are checked.
//
// Returns [ErrTitleRequired], [ErrAuthorRequired], [ErrReviewTooLong], or
// [ErrUnsupportedValue] for values of unknown type.
func (v *bookValidator) Validate(_ context.Context, value any, fields ...string) error {
	switch book := value.(type) {
	case models.Book:
		return v.validateBook(book, fields...)
	case models.BookUpdate:
		return v.validateUpdate(book)
	default:
		return ErrUnsupportedValue
	}
}

func (v *bookValidator) validateBook(book models.Book, fields ...string) error {
	for _, field := range scope(fields, FieldTitle, FieldAuthor, FieldReview) {
		switch field {
		case FieldTitle:
			if book.Title == "" {
				return ErrTitleRequired
			}
		case FieldAuthor:
			if book.Author == "" {
				return ErrAuthorRequired
			}
		case FieldReview:
			if book.Review != nil && utf8.RuneCountInString(*book.Review) > MaxReviewLength {
				return ErrReviewTooLong
			}
		}
	}

	return nil
}

func (v *bookValidator) validateUpdate(update models.BookUpdate) error {
	if update.Review != nil && utf8.RuneCountInString(*update.Review) > MaxReviewLength {
		return ErrReviewTooLong
	}

	return nil
}

// scope returns the requested field subset, or all known fields when the
// caller gave none.
func scope(requested []string, all ...string) []string {
	if len(requested) == 0 {
		return all
	}
	return requested
}
