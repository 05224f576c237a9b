package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewJWTManager("test-secret", 15*time.Minute)

	token, err := m.GenerateAccessToken("user-123", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestValidateExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", -1*time.Minute)

	token, err := m.GenerateAccessToken("user-123", "alice@example.com")
	require.NoError(t, err)

	_, err = m.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	m1 := NewJWTManager("secret-one", 15*time.Minute)
	m2 := NewJWTManager("secret-two", 15*time.Minute)

	token, err := m1.GenerateAccessToken("user-123", "alice@example.com")
	require.NoError(t, err)

	_, err = m2.ParseAndValidate(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	m := NewJWTManager("test-secret", 15*time.Minute)

	_, err := m.ParseAndValidate("not-a-jwt")
	assert.Error(t, err)
}
