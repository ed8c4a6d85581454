package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordAndVerify(t *testing.T) {
	hash, err := HashPassword("12345678")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, CheckPasswordHash("12345678", hash))
	assert.False(t, CheckPasswordHash("87654321", hash))
}

func TestHashPasswordSaltsEachCall(t *testing.T) {
	h1, err := HashPassword("12345678")
	require.NoError(t, err)
	h2, err := HashPassword("12345678")
	require.NoError(t, err)

	// Different salts, but both must verify.
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPasswordHash("12345678", h1))
	assert.True(t, CheckPasswordHash("12345678", h2))
}

func TestCheckPasswordHashMalformedHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("12345678", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("12345678", ""))
}
