package jwt

import (
	"testing"
	"time"

	"doctor-verification/config"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{Secret: secret, AccessExpiry: 15 * time.Minute})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService("secret")
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "admin@clinic.test", 1)
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin@clinic.test", claims.Email)
	assert.Equal(t, 1, claims.RoleID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newService("one").GenerateAccessToken(uuid.New(), "a@b.c", 2)
	require.NoError(t, err)

	_, err = newService("two").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newService("secret")
	issued := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, _, err := svc.GenerateAccessToken(uuid.New(), "a@b.c", 2)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(time.Hour) }
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{UserID: uuid.New(), TokenType: AccessToken}
	token := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims)
	signed, err := token.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newService("secret").ValidateToken(signed)
	assert.Error(t, err)
}
