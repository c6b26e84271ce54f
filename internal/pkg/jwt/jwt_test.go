package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc, err := NewJWTService("test-secret-key-for-jwt", "1h")
	require.NoError(t, err)

	token, expiresAt, err := svc.GenerateAccessToken("E001", true)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "E001", decoded.Subject())

	employeeID, ok := decoded.Get(ClaimEmployeeID)
	require.True(t, ok)
	assert.Equal(t, "E001", employeeID)

	isAdmin, ok := decoded.Get(ClaimIsAdmin)
	require.True(t, ok)
	assert.Equal(t, true, isAdmin)

	tokenType, ok := decoded.Get(ClaimType)
	require.True(t, ok)
	assert.Equal(t, TokenTypeAccess, tokenType)
}

func TestNewJWTService_InvalidExpiration(t *testing.T) {
	_, err := NewJWTService("secret", "one day")
	assert.Error(t, err)
}

func TestDecode_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService("secret-a", "1h")
	require.NoError(t, err)
	verifier, err := NewJWTService("secret-b", "1h")
	require.NoError(t, err)

	token, _, err := issuer.GenerateAccessToken("E001", false)
	require.NoError(t, err)

	_, err = verifier.JWTAuth().Decode(token)
	assert.Error(t, err)
}
