package jwt

import (
	"testing"
	"time"

	"github.com/afiagithub/VitalCare-server/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: time.Hour,
	})

	token, err := svc.GenerateAccessToken("patient@example.com", "Patient One")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "patient@example.com", claims.Email)
	assert.Equal(t, "Patient One", claims.Name)
	assert.NotEmpty(t, claims.TokenID)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})

	token, err := svc.GenerateAccessToken("patient@example.com", "")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "secret-a", AccessExpiry: time.Hour})
	verifier := NewJWTService(config.JWTConfig{Secret: "secret-b", AccessExpiry: time.Hour})

	token, err := issuer.GenerateAccessToken("patient@example.com", "")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})

	first, err := svc.GenerateAccessToken("patient@example.com", "")
	require.NoError(t, err)
	second, err := svc.GenerateAccessToken("patient@example.com", "")
	require.NoError(t, err)

	a, err := svc.ValidateToken(first)
	require.NoError(t, err)
	b, err := svc.ValidateToken(second)
	require.NoError(t, err)

	assert.NotEqual(t, a.TokenID, b.TokenID)
}
