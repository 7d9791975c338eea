package validators

import "errors"

// Validation errors surfaced to callers. Handlers map these to descriptive
// HTTP 400 responses, so their identity (not their text) is the contract.
var (
	// ErrTitleRequired is returned when a book payload has no title.
	ErrTitleRequired = errors.New("title is required")

	// ErrAuthorRequired is returned when a book payload has no author.
	ErrAuthorRequired = errors.New("author is required")

	// ErrReviewTooLong is returned when a review exceeds MaxReviewLength.
	ErrReviewTooLong = errors.New("review is too long")

	// ErrCredentialsRequired is returned when a user payload is missing the
	// username or the password.
	ErrCredentialsRequired = errors.New("username and password are required")

	// ErrUnsupportedValue is returned when a validator receives a value of a
	// type it does not know how to check.
	ErrUnsupportedValue = errors.New("unsupported value for validation")
)
