package db

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	"github.com/sunidhi090894/FoodShare-sub000/util"
)

func createRandomUser(t *testing.T) User {
	hashedPassword, err := util.HashPassword(util.RandomString(8))
	require.NoError(t, err)

	arg := CreateUserParams{
		Phone:          util.RandomPhone(),
		HashedPassword: hashedPassword,
		FullName:       util.RandomString(6),
		Role:           util.DonorRole,
	}

	user, err := testStore.CreateUser(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, user)

	require.Equal(t, arg.Phone, user.Phone)
	require.Equal(t, arg.HashedPassword, user.HashedPassword)
	require.Equal(t, arg.FullName, user.FullName)
	require.Equal(t, arg.Role, user.Role)
	require.True(t, user.IsActive)
	require.NotZero(t, user.ID)
	require.NotZero(t, user.CreatedAt)

	return user
}

func TestCreateUser(t *testing.T) {
	createRandomUser(t)
}

func TestGetUser(t *testing.T) {
	user1 := createRandomUser(t)

	user2, err := testStore.GetUser(context.Background(), user1.ID)
	require.NoError(t, err)
	require.NotEmpty(t, user2)

	require.Equal(t, user1.ID, user2.ID)
	require.Equal(t, user1.Phone, user2.Phone)
	require.Equal(t, user1.HashedPassword, user2.HashedPassword)
	require.Equal(t, user1.FullName, user2.FullName)
	require.Equal(t, user1.Role, user2.Role)
}

func TestGetUserByPhone(t *testing.T) {
	user1 := createRandomUser(t)

	user2, err := testStore.GetUserByPhone(context.Background(), user1.Phone)
	require.NoError(t, err)
	require.Equal(t, user1.ID, user2.ID)
}

func TestGetUser_NotFound(t *testing.T) {
	_, err := testStore.GetUser(context.Background(), 999999999)
	require.Error(t, err)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestUpdateUser_OnlyFullName(t *testing.T) {
	user1 := createRandomUser(t)
	newName := util.RandomString(6)

	user2, err := testStore.UpdateUser(context.Background(), UpdateUserParams{
		ID: user1.ID,
		FullName: pgtype.Text{
			String: newName,
			Valid:  true,
		},
	})
	require.NoError(t, err)
	require.Equal(t, newName, user2.FullName)
	// 未提供的字段保持原值
	require.Equal(t, user1.HashedPassword, user2.HashedPassword)
	require.Equal(t, user1.Phone, user2.Phone)
}

func TestCreateUserTx(t *testing.T) {
	hashedPassword, err := util.HashPassword(util.RandomString(8))
	require.NoError(t, err)

	result, err := testStore.CreateUserTx(context.Background(), CreateUserTxParams{
		Phone:          util.RandomPhone(),
		HashedPassword: hashedPassword,
		FullName:       util.RandomString(6),
		Role:           util.RecipientRole,
	})
	require.NoError(t, err)
	require.NotZero(t, result.User.ID)

	// 欢迎通知应与新用户一并创建
	require.Equal(t, result.User.ID, result.Notification.UserID)
	require.Equal(t, "system", result.Notification.Type)
	require.False(t, result.Notification.IsRead)
}
