// Package app contains shared application-layer constants used across the
// go-book-keeper handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
// The wording of several messages is frozen for compatibility with existing
// clients; do not rephrase them casually.
package app

const (
	// MsgDataMustBeJSON is returned when a mutating request does not carry
	// the application/json content type.
	MsgDataMustBeJSON = "Error: Data must be json"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)

// User endpoint messages.
const (
	// MsgSignedUp acknowledges a successful signup.
	MsgSignedUp = "Congrats, you've signed up!"

	// MsgUsernameTaken is returned when the requested username already exists.
	MsgUsernameTaken = "Error: The username is taken already."

	// MsgUsernameAndPasswordRequired is returned when either credential field
	// is missing from a signup or verify request.
	MsgUsernameAndPasswordRequired = "Error: both 'username' and 'password' keys are required"

	// MsgUserVerified is returned when the supplied credentials match a
	// stored account.
	MsgUserVerified = "User has been verified"

	// MsgUserNotVerified is returned when the supplied credentials do not
	// match. The same message covers an unknown username and a wrong
	// password so that callers cannot enumerate accounts.
	MsgUserNotVerified = "User NOT verified"

	// MsgAllUsersDeleted acknowledges a bulk user deletion.
	MsgAllUsersDeleted = "All your users have been deleted"

	// MsgUserDeletedFmt acknowledges a single user deletion; the verb slot
	// takes the deleted username.
	MsgUserDeletedFmt = "The user %s has been deleted."

	// MsgUserNotFound is returned when a by-id user lookup matches no row.
	MsgUserNotFound = "Error: no user with that id exists"
)

// Book endpoint messages.
const (
	// MsgBookAdded acknowledges a successful book creation.
	MsgBookAdded = "You've added a new book!"

	// MsgTitleRequired is returned when the title field is missing.
	MsgTitleRequired = "Error: data must have a 'Title' key."

	// MsgAuthorRequired is returned when the author field is missing.
	MsgAuthorRequired = "Error: data must have a 'Author' key."

	// MsgTitleTaken is returned when the requested title already exists.
	MsgTitleTaken = "Error: title must be unique"

	// MsgReviewTooLong is returned when the review exceeds 144 characters.
	MsgReviewTooLong = "Error: review must be 144 characters or fewer"

	// MsgBookDeleted acknowledges a successful book deletion.
	MsgBookDeleted = "Book was successfully deleted."

	// MsgBookNotFound is returned when a by-id book lookup matches no row.
	MsgBookNotFound = "Error: no book with that id exists"
)
