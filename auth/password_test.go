package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_NeverEqualsPlaintext(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.NotEmpty(t, hash)
}

func TestHashPassword_SamePlaintextDifferentHashes(t *testing.T) {
	h1, err := HashPassword("hunter22")
	require.NoError(t, err)
	h2, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)

	// both still verify
	assert.True(t, CheckPassword("hunter22", h1))
	assert.True(t, CheckPassword("hunter22", h2))
}

func TestCheckPassword_WrongPlaintext(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.False(t, CheckPassword("hunter23", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestCheckPassword_GarbageHash(t *testing.T) {
	assert.False(t, CheckPassword("hunter22", "not-a-bcrypt-hash"))
}
