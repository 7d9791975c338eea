package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-book-keeper/models"
	"github.com/stretchr/testify/require"
)

func TestNewUserValidator(t *testing.T) {
	v := NewUserValidator()
	require.NotNil(t, v)
}

func TestValidateUser(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		u := models.User{Username: "gopher", Password: "secret"}
		require.NoError(t, v.Validate(ctx, u))
	})

	t.Run("missing username", func(t *testing.T) {
		u := models.User{Password: "secret"}
		require.ErrorIs(t, v.Validate(ctx, u), ErrCredentialsRequired)
	})

	t.Run("missing password", func(t *testing.T) {
		u := models.User{Username: "gopher"}
		require.ErrorIs(t, v.Validate(ctx, u), ErrCredentialsRequired)
	})

	t.Run("both missing", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.User{}), ErrCredentialsRequired)
	})

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "not a user"), ErrUnsupportedValue)
	})
}
