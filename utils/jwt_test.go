package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")
	t.Cleanup(func() { SetJWTSecret("") })

	token, err := GenerateToken("user-1")
	require.NoError(t, err)

	claims, err := ParseToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)

	claims, err = ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestToken_WrongSecret(t *testing.T) {
	SetJWTSecret("one")
	token, err := GenerateToken("user-1")
	require.NoError(t, err)

	SetJWTSecret("two")
	t.Cleanup(func() { SetJWTSecret("") })

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestToken_NoSecret(t *testing.T) {
	SetJWTSecret("")

	_, err := GenerateToken("user-1")
	assert.Error(t, err)
	_, err = ParseToken("anything")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
