package service

import (
	"testing"
	"time"

	"ramen-kiosk/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthService(db)

	require.NoError(t, auth.Register("alice", "pw1", false))

	err := auth.Register("alice", "other-password", true)
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// The first account is unaffected and still logs in.
	_, err = auth.Login("alice", "pw1")
	assert.NoError(t, err)

	var count int64
	db.Model(&model.User{}).Where("username = ?", "alice").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthService(db)

	require.NoError(t, auth.Register("alice", "pw1", false))

	_, err := auth.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	_, err = auth.Login("nobody", "pw1")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestResolveTokenSubjectMatchesAccount(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthService(db)

	require.NoError(t, auth.Register("alice", "pw1", false))
	token, err := auth.Login("alice", "pw1")
	require.NoError(t, err)

	user, err := auth.ResolveToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.IsAdmin)
}

func TestResolveTokenRejectsGarbage(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthService(db)

	_, err := auth.ResolveToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveTokenRejectsExpired(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, "test-secret", -time.Minute)

	require.NoError(t, auth.Register("alice", "pw1", false))
	token, err := auth.Login("alice", "pw1")
	require.NoError(t, err)

	_, err = auth.ResolveToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveTokenRejectsWrongSecret(t *testing.T) {
	db := setupTestDB(t)

	issuer := NewAuthService(db, "secret-a", 30*time.Minute)
	verifier := NewAuthService(db, "secret-b", 30*time.Minute)

	require.NoError(t, issuer.Register("alice", "pw1", false))
	token, err := issuer.Login("alice", "pw1")
	require.NoError(t, err)

	_, err = verifier.ResolveToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveTokenRejectsUnknownSubject(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthService(db)

	require.NoError(t, auth.Register("alice", "pw1", false))
	token, err := auth.Login("alice", "pw1")
	require.NoError(t, err)

	require.NoError(t, db.Where("username = ?", "alice").Delete(&model.User{}).Error)

	_, err = auth.ResolveToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
