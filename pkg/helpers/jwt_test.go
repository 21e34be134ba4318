package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestJWT() *JWTManager {
	return NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestJWT()
	token, exp, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(15*time.Minute), exp, 5*time.Second)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
}

func TestTokensUseDistinctSecrets(t *testing.T) {
	m := newTestJWT()
	access, _, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	refresh, _, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	// tokens are not interchangeable between the two verifiers
	_, err = m.ParseRefreshToken(access)
	require.Error(t, err)
	_, err = m.ParseAccessToken(refresh)
	require.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)
	token, _, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	_, err = m.ParseAccessToken(token)
	require.Error(t, err)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	m := newTestJWT()
	token, _, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	_, err = m.ParseAccessToken(token + "x")
	require.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	other := NewJWTManager("different-secret", "refresh-secret", 15*time.Minute, time.Hour)
	token, _, err := other.GenerateAccessToken("user-1")
	require.NoError(t, err)
	_, err = newTestJWT().ParseAccessToken(token)
	require.Error(t, err)
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)
	require.True(t, CompareHashAndPassword(hash, "secret1"))
	require.False(t, CompareHashAndPassword(hash, "secret2"))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}
