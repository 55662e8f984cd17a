package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintenance-ticketing-server/config"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("sturdy-passphrase")
	require.NoError(t, err)
	assert.NotEqual(t, "sturdy-passphrase", hash)

	assert.True(t, CheckPasswordHash("sturdy-passphrase", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	config.Load()

	token, err := GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	technicianID, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), technicianID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	config.Load()

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("tech@example.com"))
	assert.True(t, ValidateEmail("first.last@sub.example.co"))
	assert.False(t, ValidateEmail("not-an-address"))
	assert.False(t, ValidateEmail("missing@domain"))
	assert.False(t, ValidateEmail("@example.com"))
	assert.False(t, ValidateEmail(""))
}
