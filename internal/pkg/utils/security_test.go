package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	t.Run("Hash And Verify", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery", 4)
		assert.NoError(t, err)
		assert.NotEqual(t, "correct horse battery", hash)
		assert.True(t, CheckPasswordHash("correct horse battery", hash))
	})

	t.Run("Wrong Password Fails", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery", 4)
		assert.NoError(t, err)
		assert.False(t, CheckPasswordHash("wrong password", hash))
	})
}

func TestAuthJWT(t *testing.T) {
	secret := "test-secret"

	t.Run("Roundtrip", func(t *testing.T) {
		token, err := GenerateAuthJWT("64b5f0a2e13e4c0012345678", "jane@example.com", secret, 1)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := ParseAuthJWT(token, secret)
		assert.NoError(t, err)
		assert.Equal(t, "64b5f0a2e13e4c0012345678", claims.ID)
		assert.Equal(t, "jane@example.com", claims.Email)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := GenerateAuthJWT("64b5f0a2e13e4c0012345678", "jane@example.com", secret, -1)
		assert.NoError(t, err)

		claims, err := ParseAuthJWT(token, secret)
		assert.Nil(t, claims)
		assert.ErrorContains(t, err, "Token has expired. Please log in again.")
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateAuthJWT("64b5f0a2e13e4c0012345678", "jane@example.com", secret, 1)
		assert.NoError(t, err)

		claims, err := ParseAuthJWT(token, "another-secret")
		assert.Nil(t, claims)
		assert.ErrorContains(t, err, "Authentication failed - Invalid token")
	})

	t.Run("Garbage Token", func(t *testing.T) {
		claims, err := ParseAuthJWT("not-a-jwt", secret)
		assert.Nil(t, claims)
		assert.ErrorContains(t, err, "Authentication failed - Invalid token")
	})
}
