package jwtauth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_RoundTrip(t *testing.T) {
	g := NewGenerator("test-secret", 30*time.Minute)

	token, err := g.GenerateToken("alice")
	require.NoError(t, err, "failed to generate token")
	require.NotEmpty(t, token, "token is empty")

	sub, err := g.ParseSubject(token)
	assert.NoError(t, err, "failed to verify token")
	assert.Equal(t, "alice", sub, "subject does not match")
}

func TestGenerator_ExpiryInFuture(t *testing.T) {
	g := NewGenerator("test-secret", 30*time.Minute)

	token, err := g.GenerateToken("alice")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()), "expiry is not in the future")
}

func TestGenerator_ExpiredToken(t *testing.T) {
	// Negative expiration produces a token that is already expired.
	g := NewGenerator("test-secret", -1*time.Minute)

	token, err := g.GenerateToken("alice")
	require.NoError(t, err)

	_, err = g.ParseSubject(token)
	assert.ErrorIs(t, err, ErrInvalidToken, "expired token should fail verification")
}

func TestGenerator_WrongSecret(t *testing.T) {
	g := NewGenerator("test-secret", 30*time.Minute)
	other := NewGenerator("other-secret", 30*time.Minute)

	token, err := g.GenerateToken("alice")
	require.NoError(t, err)

	_, err = other.ParseSubject(token)
	assert.ErrorIs(t, err, ErrInvalidToken, "token signed with a different secret should fail")
}

func TestGenerator_MalformedToken(t *testing.T) {
	g := NewGenerator("test-secret", 30*time.Minute)

	_, err := g.ParseSubject("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerator_MissingSubject(t *testing.T) {
	// Token signed with the right secret but without a sub claim.
	claims := jwt.MapClaims{
		"exp": time.Now().Add(30 * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	g := NewGenerator("test-secret", 30*time.Minute)
	_, err = g.ParseSubject(signed)
	assert.ErrorIs(t, err, ErrInvalidToken, "token without sub claim should fail")
}

func TestGenerator_RejectsNonHMAC(t *testing.T) {
	// alg=none tokens must never verify.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "alice"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	g := NewGenerator("test-secret", 30*time.Minute)
	_, err = g.ParseSubject(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
