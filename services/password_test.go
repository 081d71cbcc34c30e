package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	first, err := HashPassword("p")
	require.NoError(t, err)
	second, err := HashPassword("p")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "salts must differ")
	assert.Len(t, strings.Split(first, "$"), 2)

	_, err = HashPassword("")
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	stored, err := HashPassword("correct horse")
	require.NoError(t, err)

	ok, err := VerifyPassword(stored, "correct horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(stored, "correct horse ")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_BadFormat(t *testing.T) {
	for _, stored := range []string{"", "plaintext", "a$b$c", "!!$abc", "YWJj$"} {
		ok, err := VerifyPassword(stored, "anything")
		assert.False(t, ok, stored)
		assert.ErrorIs(t, err, ErrInvalidHash, stored)
	}
}
