package validators

import (
	"context"

	"github.com/MKhiriev/go-book-keeper/models"
)

// userValidator validates user credentials supplied on registration and
// verification.
type userValidator struct{}

// NewUserValidator constructs a [Validator] for [models.User] values.
func NewUserValidator() Validator {
	return &userValidator{}
}

// Validate checks that both username and password are present.
// Returns [ErrCredentialsRequired] when either is empty and
// [ErrUnsupportedValue] for values of unknown type.
func (v *userValidator) Validate(_ context.Context, value any, _ ...string) error {
	user, ok := value.(models.User)
	if !ok {
		return ErrUnsupportedValue
	}

	if user.Username == "" || user.Password == "" {
		return ErrCredentialsRequired
	}

	return nil
}
