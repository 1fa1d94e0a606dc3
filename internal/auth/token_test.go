package auth_test

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-service/internal/auth"
	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	token, expiresAt, err := tm.Generate("a@b.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	email, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email)
}

func TestTokenExpiry(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Millisecond)

	token, _, err := tm.Generate("a@b.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = tm.Verify(token)
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "INVALID_TOKEN", domainErr.Code)
	assert.Equal(t, 401, domainErr.HTTPStatus)
}

func TestTokenWrongKey(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", time.Hour)
	verifier := auth.NewTokenManager("secret-b", time.Hour)

	token, _, err := issuer.Generate("a@b.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.Equal(t, "INVALID_TOKEN", apperrors.ToDomainError(err).Code)
}

func TestTokenMalformed(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	_, err := tm.Verify("not-a-token")
	require.Error(t, err)
	assert.Equal(t, "INVALID_TOKEN", apperrors.ToDomainError(err).Code)
}

func TestTokenMissingSubject(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.Verify(signed)
	require.Error(t, err)
	assert.Equal(t, "MISSING_SUBJECT", apperrors.ToDomainError(err).Code)
}
