//go:build unit

package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hashed)
	assert.NoError(t, ValidateHash(hashed))

	assert.NoError(t, ComparePassword(hashed, "password123"))
	assert.ErrorIs(t, ComparePassword(hashed, "password124"), ErrComparisonFailed)
}

func TestInvalidInputs(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrInvalidPassword)
	_, err = HashPassword(strings.Repeat("p", 73))
	assert.ErrorIs(t, err, ErrInvalidPassword)

	assert.ErrorIs(t, ComparePassword("", "password123"), ErrInvalidPassword)
	assert.ErrorIs(t, ComparePassword("$2a$10$abc", ""), ErrInvalidPassword)
	assert.ErrorIs(t, ComparePassword("not-a-bcrypt-hash", "password123"), ErrMalformedHash)
}

func TestValidateHash(t *testing.T) {
	weak, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.ErrorIs(t, ValidateHash(""), ErrMalformedHash)
	assert.ErrorIs(t, ValidateHash("plaintext-secret"), ErrMalformedHash)
	assert.ErrorIs(t, ValidateHash(string(weak)), ErrWeakHash)
}
