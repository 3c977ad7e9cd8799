package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateSessionID(t *testing.T) {
	a, err := GenerateSessionID()
	require.NoError(t, err)
	b, err := GenerateSessionID()
	require.NoError(t, err)

	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
}

func TestSessionToken_RoundTrip(t *testing.T) {
	tok, err := GenerateSessionToken("sess-1", secret, time.Hour)
	require.NoError(t, err)

	claims, err := VerifySessionToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestSessionToken_NoTTL(t *testing.T) {
	tok, err := GenerateSessionToken("sess-1", secret, 0)
	require.NoError(t, err)

	claims, err := VerifySessionToken(tok, secret)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestSessionToken_Rejected(t *testing.T) {
	tok, err := GenerateSessionToken("sess-1", secret, time.Hour)
	require.NoError(t, err)

	_, err = VerifySessionToken(tok, []byte("other-secret"))
	assert.Error(t, err)

	_, err = VerifySessionToken(tok+"x", secret)
	assert.Error(t, err)

	_, err = VerifySessionToken("garbage", secret)
	assert.Error(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "sess-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredStr, err := expired.SignedString(secret)
	require.NoError(t, err)
	_, err = VerifySessionToken(expiredStr, secret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	noID := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{})
	noIDStr, err := noID.SignedString(secret)
	require.NoError(t, err)
	_, err = VerifySessionToken(noIDStr, secret)
	assert.Error(t, err)

	_, err = GenerateSessionToken("", secret, time.Hour)
	assert.Error(t, err)
}
