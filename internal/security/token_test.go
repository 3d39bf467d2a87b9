package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager(testSecret)

	token, err := manager.GenerateAccessToken(7, "ops@example.com")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(7), claims.OperatorID)
	assert.Equal(t, "ops@example.com", claims.Email)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager(testSecret).GenerateAccessToken(7, "ops@example.com")
	require.NoError(t, err)

	_, err = NewTokenManager("another-secret-another-secret-xx").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := NewTokenManager(testSecret).ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
