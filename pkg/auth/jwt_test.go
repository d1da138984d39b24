package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour)

	tok, err := m.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := m.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", -1*time.Minute)

	tok, err := m.Generate("user-123")
	require.NoError(t, err)

	_, err = m.Validate(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidate_Garbage(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour)

	_, err := m.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewJWTManager("right-secret", time.Hour)
	verifier := NewJWTManager("wrong-secret", time.Hour)

	tok, err := issuer.Generate("user-123")
	require.NoError(t, err)

	_, err = verifier.Validate(tok)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestValidate_MissingUserID(t *testing.T) {
	t.Parallel()

	secret := "super-secret"
	m := NewJWTManager(secret, time.Hour)

	// Well-signed token without a user_id claim
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = m.Validate(tok)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
