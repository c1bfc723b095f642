package jwt

import (
	"testing"
	"time"

	"sistema-provale/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(access time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  access,
		RefreshExpiry: time.Hour,
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestService(time.Minute)
	sub := Subject{UserID: 7, Username: "rquispe", Rol: "Gerente"}

	token, tokenID, err := svc.GenerateAccessToken(sub)
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "rquispe", claims.Username)
	assert.Equal(t, "Gerente", claims.Rol)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestValidateToken_Rejects(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		svc := newTestService(-time.Minute)
		token, _, err := svc.GenerateAccessToken(Subject{UserID: 1})
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("other secret", func(t *testing.T) {
		token, _, err := newTestService(time.Minute).GenerateRefreshToken(Subject{UserID: 1})
		require.NoError(t, err)

		other := NewJWTService(config.JWTConfig{Secret: "another", AccessExpiry: time.Minute})
		_, err = other.ValidateToken(token)
		assert.Error(t, err)
	})
}
