package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword computes a salted one-way bcrypt hash of the given plaintext
// password using the provided cost factor.
//
// bcrypt embeds the salt and cost into the returned hash string, so no
// additional state is needed for later verification.
//
// Parameters:
//
//	password - plaintext password to hash
//	cost     - bcrypt cost factor (e.g. 10); higher is slower and stronger
//
// Returns:
//
//	string - the bcrypt hash in its standard textual encoding
//	error  - non-nil if hashing fails (e.g. cost out of range)
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext password matches the given
// bcrypt hash. A corrupted or non-bcrypt hash yields false.
func CheckPasswordHash(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
