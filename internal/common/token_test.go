package common

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	os.Setenv("SESSION_SECRET", "test-secret")
	defer os.Unsetenv("SESSION_SECRET")

	token, err := GenerateSessionToken("u1", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "chatty", claims.Issuer)
}

func TestParseSessionToken_Garbage(t *testing.T) {
	os.Setenv("SESSION_SECRET", "test-secret")
	defer os.Unsetenv("SESSION_SECRET")

	_, err := ParseSessionToken("not-a-token")
	assert.Error(t, err)
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	os.Setenv("SESSION_SECRET", "test-secret")
	token, err := GenerateSessionToken("u1", "alice")
	require.NoError(t, err)

	os.Setenv("SESSION_SECRET", "different-secret")
	defer os.Unsetenv("SESSION_SECRET")

	_, err = ParseSessionToken(token)
	assert.Error(t, err)
}

func TestTokenIdentity(t *testing.T) {
	os.Setenv("SESSION_SECRET", "test-secret")
	defer os.Unsetenv("SESSION_SECRET")

	token, err := GenerateSessionToken("u1", "alice")
	require.NoError(t, err)

	identity, err := NewTokenIdentity(token)
	require.NoError(t, err)

	userID, err := identity.CurrentUserID()
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "alice", identity.Username())
}

func TestTokenIdentity_InvalidToken(t *testing.T) {
	os.Setenv("SESSION_SECRET", "test-secret")
	defer os.Unsetenv("SESSION_SECRET")

	_, err := NewTokenIdentity("garbage")
	assert.Error(t, err)
}

func TestTokenIdentity_NilReceiver(t *testing.T) {
	var identity *TokenIdentity
	_, err := identity.CurrentUserID()
	assert.Error(t, err)
}
