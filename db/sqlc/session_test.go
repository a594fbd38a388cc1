package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sunidhi090894/FoodShare-sub000/util"
)

func createRandomSession(t *testing.T, user User) Session {
	arg := CreateSessionParams{
		UserID:       user.ID,
		RefreshToken: util.RandomString(32),
		UserAgent:    "test-agent",
		ClientIp:     "127.0.0.1",
		ExpiresAt:    time.Now().Add(24 * time.Hour),
	}

	session, err := testStore.CreateSession(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, session)

	require.NotZero(t, session.ID)
	require.Equal(t, arg.UserID, session.UserID)
	require.Equal(t, arg.RefreshToken, session.RefreshToken)
	require.False(t, session.IsRevoked)
	require.NotZero(t, session.CreatedAt)

	return session
}

func TestCreateSession(t *testing.T) {
	user := createRandomUser(t)
	createRandomSession(t, user)
}

func TestGetSessionByRefreshToken(t *testing.T) {
	user := createRandomUser(t)
	session1 := createRandomSession(t, user)

	session2, err := testStore.GetSessionByRefreshToken(context.Background(), session1.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, session1.ID, session2.ID)
}

func TestRevokeSession(t *testing.T) {
	user := createRandomUser(t)
	session := createRandomSession(t, user)

	revoked, err := testStore.RevokeSession(context.Background(), session.ID)
	require.NoError(t, err)
	require.True(t, revoked.IsRevoked)

	// 再次获取验证
	session2, err := testStore.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	require.True(t, session2.IsRevoked)
}
