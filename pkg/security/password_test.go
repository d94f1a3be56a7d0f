package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, HashPassword("123456"), HashPassword("123456"))
	})

	t.Run("Different passwords different digests", func(t *testing.T) {
		assert.NotEqual(t, HashPassword("123456"), HashPassword("123457"))
	})

	t.Run("Known sha256 vector", func(t *testing.T) {
		// echo -n password | sha256sum
		assert.Equal(t,
			"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
			HashPassword("password"))
	})
}

func TestVerifyPassword(t *testing.T) {
	digest := HashPassword("secret")

	assert.True(t, VerifyPassword("secret", digest))
	assert.False(t, VerifyPassword("Secret", digest))
	assert.False(t, VerifyPassword("secret", "not-a-digest"))
}
