package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	phone := "+77001234567"
	user, err := NewUser("Aigerim", "Satpayeva", "aigerim@example.com", "secret123", &phone)
	require.NoError(t, err)

	assert.Equal(t, "Aigerim", user.FirstName)
	assert.Equal(t, "aigerim@example.com", user.Email)
	assert.Equal(t, RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsAdmin())
	assert.NotEqual(t, "secret123", user.PasswordHash, "password must not be stored in plain text")
}

func TestUser_CheckPassword(t *testing.T) {
	user, err := NewUser("Aigerim", "Satpayeva", "aigerim@example.com", "secret123", nil)
	require.NoError(t, err)

	assert.True(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("wrong-password"))
	assert.False(t, user.CheckPassword(""))
}

func TestUser_SetPassword(t *testing.T) {
	user, err := NewUser("Aigerim", "Satpayeva", "aigerim@example.com", "old-password", nil)
	require.NoError(t, err)

	oldHash := user.PasswordHash
	require.NoError(t, user.SetPassword("new-password"))

	assert.NotEqual(t, oldHash, user.PasswordHash)
	assert.True(t, user.CheckPassword("new-password"))
	assert.False(t, user.CheckPassword("old-password"))
}

func TestUser_IsAdmin(t *testing.T) {
	user, err := NewUser("Aigerim", "Satpayeva", "aigerim@example.com", "secret123", nil)
	require.NoError(t, err)

	user.Role = RoleAdmin
	assert.True(t, user.IsAdmin())
}
