package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_ProducesBcryptHash(t *testing.T) {
	hash, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$2a$"), "expected bcrypt prefix, got %q", hash)
	assert.NotEqual(t, "secret", hash)
}

func TestHashPassword_UniquePerCall(t *testing.T) {
	// bcrypt salts every hash, so two hashes of the same input must differ
	h1, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestHashPassword_InvalidCost(t *testing.T) {
	_, err := HashPassword("secret", bcrypt.MaxCost+1)
	require.Error(t, err)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		want     bool
	}{
		{name: "correct password", hash: hash, password: "secret", want: true},
		{name: "wrong password", hash: hash, password: "wrong", want: false},
		{name: "empty password", hash: hash, password: "", want: false},
		{name: "corrupted hash", hash: "not-a-bcrypt-hash", password: "secret", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPasswordHash(tt.hash, tt.password))
		})
	}
}
