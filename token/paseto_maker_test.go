package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPasetoMaker(t *testing.T) {
	maker, err := NewPasetoMaker(testSymmetricKey)
	require.NoError(t, err)

	userID := int64(42)
	duration := time.Minute

	issuedAt := time.Now()
	expiredAt := issuedAt.Add(duration)

	token, payload, err := maker.CreateToken(userID, duration, TokenTypeAccessToken)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, payload)

	payload, err = maker.VerifyToken(token, TokenTypeAccessToken)
	require.NoError(t, err)
	require.NotNil(t, payload)

	require.NotZero(t, payload.ID)
	require.Equal(t, userID, payload.UserID)
	require.Equal(t, byte(TokenTypeAccessToken), byte(payload.Type))
	require.WithinDuration(t, issuedAt, payload.IssuedAt, time.Second)
	require.WithinDuration(t, expiredAt, payload.ExpiredAt, time.Second)
}

func TestPasetoMakerBadKeySize(t *testing.T) {
	maker, err := NewPasetoMaker("short-key")
	require.Error(t, err)
	require.Nil(t, maker)
}

func TestExpiredPasetoToken(t *testing.T) {
	maker, err := NewPasetoMaker(testSymmetricKey)
	require.NoError(t, err)

	token, payload, err := maker.CreateToken(int64(42), -time.Minute, TokenTypeAccessToken)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, payload)

	payload, err = maker.VerifyToken(token, TokenTypeAccessToken)
	require.Error(t, err)
	require.EqualError(t, err, ErrExpiredToken.Error())
	require.Nil(t, payload)
}

func TestTamperedPasetoToken(t *testing.T) {
	maker, err := NewPasetoMaker(testSymmetricKey)
	require.NoError(t, err)

	token, _, err := maker.CreateToken(int64(42), time.Minute, TokenTypeAccessToken)
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "XXXX"
	payload, err := maker.VerifyToken(tampered, TokenTypeAccessToken)
	require.Error(t, err)
	require.EqualError(t, err, ErrInvalidToken.Error())
	require.Nil(t, payload)
}

func TestInvalidPasetoTokenType(t *testing.T) {
	maker, err := NewPasetoMaker(testSymmetricKey)
	require.NoError(t, err)

	token, payload, err := maker.CreateToken(int64(42), time.Minute, TokenTypeAccessToken)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, payload)

	// 访问令牌不能当作刷新令牌使用
	payload, err = maker.VerifyToken(token, TokenTypeRefreshToken)
	require.Error(t, err)
	require.EqualError(t, err, ErrInvalidTokenType.Error())
	require.Nil(t, payload)
}
