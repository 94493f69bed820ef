package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dkraev/inkpress/internal/common"
)

func TestTokenRoundtrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("user-1", "session-1", secret, time.Minute)
	require.NoError(t, err)

	userID, sessionID, err := ParseToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
	require.Equal(t, "session-1", sessionID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", "session-1", []byte("secret-a"), time.Minute)
	require.NoError(t, err)

	_, _, err = ParseToken(token, []byte("secret-b"))
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken("user-1", "session-1", secret, -time.Minute)
	require.NoError(t, err)

	_, _, err = ParseToken(token, secret)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	require.NoError(t, CheckPassword(hash, "hunter2"))
	require.ErrorIs(t, CheckPassword(hash, "hunter3"), common.ErrUnauthorized)
}
