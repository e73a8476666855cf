// Package password hashes and checks the admin password. ADMIN_PASSWORD_HASH
// holds a bcrypt hash produced by HashPassword.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword  = errors.New("invalid password")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrMalformedHash    = errors.New("malformed bcrypt hash")
	ErrWeakHash         = errors.New("bcrypt cost below minimum")
)

const (
	Cost    = bcrypt.DefaultCost
	MinCost = bcrypt.DefaultCost

	// bcrypt ignores input past this length
	maxLen = 72
)

func HashPassword(plain string) (string, error) {
	if plain == "" || len(plain) > maxLen {
		return "", ErrInvalidPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ValidateHash checks that a configured hash is bcrypt with at least MinCost.
func ValidateHash(hashed string) error {
	cost, err := bcrypt.Cost([]byte(hashed))
	if err != nil {
		return ErrMalformedHash
	}
	if cost < MinCost {
		return ErrWeakHash
	}
	return nil
}

// ComparePassword returns ErrComparisonFailed on a mismatch and
// ErrMalformedHash when hashed is not bcrypt.
func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return ErrMalformedHash
	}
}
