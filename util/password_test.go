package util

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPassword(t *testing.T) {
	password := "secret-food-2025"

	hashedPassword1, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEmpty(t, hashedPassword1)

	err = CheckPassword(password, hashedPassword1)
	require.NoError(t, err)

	wrongPassword := "wrong-password"
	err = CheckPassword(wrongPassword, hashedPassword1)
	require.EqualError(t, err, bcrypt.ErrMismatchedHashAndPassword.Error())

	// 相同明文每次生成的哈希不同（随机盐）
	hashedPassword2, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEmpty(t, hashedPassword2)
	require.NotEqual(t, hashedPassword1, hashedPassword2)
}

func TestIsSupportedRole(t *testing.T) {
	require.True(t, IsSupportedRole(DonorRole))
	require.True(t, IsSupportedRole(RecipientRole))
	require.True(t, IsSupportedRole(VolunteerRole))
	require.True(t, IsSupportedRole(AdminRole))
	require.False(t, IsSupportedRole("merchant"))
	require.False(t, IsSupportedRole(""))
}
