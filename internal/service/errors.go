package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrNotVerified covers both an unknown username and a wrong password so
	// that callers cannot enumerate existing accounts.
	ErrNotVerified = errors.New("user not verified")

	ErrPasswordHashingFailed = errors.New("password hashing failed")
)
