package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignerGenerateAndValidate(t *testing.T) {
	signer, err := NewSigner("test-secret")
	require.NoError(t, err)

	token, expiresAt, err := signer.GenerateToken("01HSESSION", 30*time.Minute)
	require.NoError(t, err)
	assert.True(t, time.Until(expiresAt) > 0, "expected future expiration, got %v", expiresAt)

	claims, err := signer.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "01HSESSION", claims.Subject)
	assert.Equal(t, defaultIssuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestNewSignerRequiresSecret(t *testing.T) {
	_, err := NewSigner("   ")
	assert.Error(t, err)
}

func TestGenerateTokenValidatesInput(t *testing.T) {
	signer, err := NewSigner("test-secret")
	require.NoError(t, err)

	_, _, err = signer.GenerateToken("", time.Minute)
	assert.Error(t, err)
	_, _, err = signer.GenerateToken("s1", 0)
	assert.Error(t, err)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	a, err := NewSigner("secret-a")
	require.NoError(t, err)
	b, err := NewSigner("secret-b")
	require.NoError(t, err)

	token, _, err := a.GenerateToken("s1", time.Minute)
	require.NoError(t, err)

	_, err = b.ParseAndValidate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	signer, err := NewSigner("test-secret")
	require.NoError(t, err)

	issued := time.Date(2024, 1, 16, 20, 0, 0, 0, time.UTC)
	signer.now = func() time.Time { return issued }
	token, _, err := signer.GenerateToken("s1", time.Minute)
	require.NoError(t, err)

	signer.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = signer.ParseAndValidate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	signer, err := NewSigner("test-secret")
	require.NoError(t, err)

	now := time.Now().UTC()
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   "s1",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	}})
	token, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = signer.ParseAndValidate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsEmpty(t *testing.T) {
	signer, err := NewSigner("test-secret")
	require.NoError(t, err)
	_, err = signer.ParseAndValidate("  ")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
