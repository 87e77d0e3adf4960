package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword_HashAndVerify(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hashed)

	assert.True(t, VerifyPassword(hashed, "correct horse battery staple"))
	assert.False(t, VerifyPassword(hashed, "wrong password"))
}

func TestPassword_HashesDiffer(t *testing.T) {
	first, err := HashPassword("swordfish")
	require.NoError(t, err)
	second, err := HashPassword("swordfish")
	require.NoError(t, err)

	// bcrypt salts per call.
	assert.NotEqual(t, first, second)
}
