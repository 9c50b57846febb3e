package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("super_password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "super_password123", hash)

	assert.True(t, CheckPasswordHash("super_password123", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("same-password")
	assert.NoError(t, err)
	h2, err := HashPassword("same-password")
	assert.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes never match.
	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPasswordHash("same-password", h1))
	assert.True(t, CheckPasswordHash("same-password", h2))
}

func TestCheckPasswordHashGarbage(t *testing.T) {
	assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
}
