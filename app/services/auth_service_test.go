package services

import (
	"testing"

	"accountd/app/dto"
	"accountd/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	users, auth, gdb := newServices(t)
	view, err := users.CreateUser(dto.CreateUserRequest{Username: "alice", Password: "longenough1"})
	require.NoError(t, err)

	var u models.User
	require.NoError(t, gdb.First(&u, view.ID).Error)

	token, err := auth.CreateToken(&u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := auth.GetUserByToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, resolved.ID)
	assert.Equal(t, "alice", resolved.Username)
}

func TestGetUserByUnknownToken(t *testing.T) {
	_, auth, _ := newServices(t)
	_, err := auth.GetUserByToken("no-such-token")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestDeleteToken(t *testing.T) {
	users, auth, gdb := newServices(t)
	require.NoError(t, users.EnsureAdmin("admin", "admin123"))
	var u models.User
	require.NoError(t, gdb.Where("username = ?", "admin").First(&u).Error)

	token, err := auth.CreateToken(&u)
	require.NoError(t, err)

	require.NoError(t, auth.DeleteToken(token))
	_, err = auth.GetUserByToken(token)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// deleting again (or deleting garbage) is a no-op
	assert.NoError(t, auth.DeleteToken(token))
	assert.NoError(t, auth.DeleteToken("never-existed"))
}

func TestMultipleTokensPerUser(t *testing.T) {
	users, auth, gdb := newServices(t)
	require.NoError(t, users.EnsureAdmin("admin", "admin123"))
	var u models.User
	require.NoError(t, gdb.Where("username = ?", "admin").First(&u).Error)

	t1, err := auth.CreateToken(&u)
	require.NoError(t, err)
	t2, err := auth.CreateToken(&u)
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)

	// revoking one session leaves the other alive
	require.NoError(t, auth.DeleteToken(t1))
	resolved, err := auth.GetUserByToken(t2)
	require.NoError(t, err)
	assert.Equal(t, u.ID, resolved.ID)
}

func TestIsAdmin(t *testing.T) {
	users, auth, gdb := newServices(t)
	require.NoError(t, users.EnsureAdmin("admin", "admin123"))
	view, err := users.CreateUser(dto.CreateUserRequest{Username: "alice", Password: "longenough1"})
	require.NoError(t, err)

	var admin, alice models.User
	require.NoError(t, gdb.Where("username = ?", "admin").First(&admin).Error)
	require.NoError(t, gdb.First(&alice, view.ID).Error)

	adminToken, err := auth.CreateToken(&admin)
	require.NoError(t, err)
	aliceToken, err := auth.CreateToken(&alice)
	require.NoError(t, err)

	assert.True(t, auth.IsAdmin(adminToken))
	assert.False(t, auth.IsAdmin(aliceToken))
	assert.False(t, auth.IsAdmin("no-such-token"))
}
