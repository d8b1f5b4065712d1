package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)
	assert.True(t, VerifyPassword(hash, "secret"))
	assert.False(t, VerifyPassword(hash, "other"))
}

func TestNewAccessToken(t *testing.T) {
	at, err := NewAccessToken("secret", "user-1", "sponsor", 15)
	require.NoError(t, err)
	assert.NotEmpty(t, at.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), at.Exp, 5*time.Second)

	tok, err := jwt.Parse(at.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)
	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "sponsor", claims["user_type"])

	t.Run("wrong secret fails verification", func(t *testing.T) {
		_, err := jwt.Parse(at.Token, func(t *jwt.Token) (interface{}, error) {
			return []byte("different"), nil
		})
		assert.Error(t, err)
	})
}

func TestSessionTokens(t *testing.T) {
	st, err := NewSessionToken(24 * time.Hour)
	require.NoError(t, err)
	assert.Len(t, st.Raw, 64) // 32 random bytes hex-encoded
	assert.WithinDuration(t, time.Now().UTC().Add(24*time.Hour), st.Exp, 5*time.Second)

	other, err := NewSessionToken(24 * time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, st.Raw, other.Raw)

	t.Run("hashing is deterministic and one-way", func(t *testing.T) {
		h1 := HashSessionRaw(st.Raw)
		h2 := HashSessionRaw(st.Raw)
		assert.Equal(t, h1, h2)
		assert.NotEqual(t, st.Raw, h1)
		assert.Len(t, h1, 64) // sha256 hex
	})
}
