package session

import (
	"testing"

	"login-test/internal/hasher"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDigester struct {
	calls int
	last  []byte
}

func (c *countingDigester) Hash(p []byte) string {
	c.calls++
	c.last = append([]byte(nil), p...)
	return "digest"
}

func TestNewState_StartsLoggedOut(t *testing.T) {
	s := NewState(nil)

	assert.False(t, s.IsLoggedIn())
	_, ok := s.CurrentAccount()
	assert.False(t, ok)
	assert.Equal(t, Form{}, s.Form())
}

func TestLogin_CreatesAccount(t *testing.T) {
	s := NewState(nil)

	s.Login("alice", "secret")

	require.True(t, s.IsLoggedIn())
	acc, ok := s.CurrentAccount()
	require.True(t, ok)
	assert.Equal(t, "alice", acc.Username)
	assert.Equal(t, hasher.Hash([]byte("secret")), acc.PasswordHash)
	assert.NotEqual(t, uuid.Nil, acc.SessionID)
	assert.False(t, acc.CreatedAt.IsZero())
}

func TestLogin_ThenLogout(t *testing.T) {
	s := NewState(nil)

	s.Login("alice", "secret")
	s.Logout()

	assert.False(t, s.IsLoggedIn())
	_, ok := s.CurrentAccount()
	assert.False(t, ok)
}

func TestLogout_Idempotent(t *testing.T) {
	s := NewState(nil)

	s.Logout()
	s.Logout()
	assert.False(t, s.IsLoggedIn())

	s.Login("alice", "x")
	s.Logout()
	s.Logout()
	assert.False(t, s.IsLoggedIn())
}

func TestLogin_TwiceReplacesAccount(t *testing.T) {
	s := NewState(nil)

	s.Login("alice", "secret")
	first, _ := s.CurrentAccount()
	s.Login("carol", "hunter2")

	acc, ok := s.CurrentAccount()
	require.True(t, ok)
	assert.Equal(t, "carol", acc.Username)
	assert.Equal(t, hasher.Hash([]byte("hunter2")), acc.PasswordHash)
	assert.NotEqual(t, first.SessionID, acc.SessionID)
}

func TestLogin_EmptyPassword(t *testing.T) {
	s := NewState(nil)

	s.Login("bob", "")

	acc, ok := s.CurrentAccount()
	require.True(t, ok)
	assert.Equal(t, "bob", acc.Username)
	assert.Equal(t,
		"cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce"+
			"47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
		acc.PasswordHash)
}

func TestLogin_EmptyUsernameAccepted(t *testing.T) {
	s := NewState(nil)

	s.Login("", "")

	acc, ok := s.CurrentAccount()
	require.True(t, ok)
	assert.Empty(t, acc.Username)
}

func TestLogin_UsesDigester(t *testing.T) {
	d := &countingDigester{}
	s := NewState(d)

	s.Login("alice", "secret")

	acc, _ := s.CurrentAccount()
	assert.Equal(t, 1, d.calls)
	assert.Equal(t, []byte("secret"), d.last)
	assert.Equal(t, "digest", acc.PasswordHash)
}

func TestCurrentAccount_ReturnsCopy(t *testing.T) {
	s := NewState(nil)
	s.Login("alice", "secret")

	acc, _ := s.CurrentAccount()
	acc.Username = "mallory"
	s.Logout()

	assert.Equal(t, "mallory", acc.Username)
	assert.False(t, s.IsLoggedIn())
}

func TestSubmitLogin_UsesAndClearsBuffers(t *testing.T) {
	s := NewState(nil)
	s.SetUsernameInput("alice")
	s.SetPasswordInput("secret")
	assert.Equal(t, Form{Username: "alice", Password: "secret"}, s.Form())

	acc := s.SubmitLogin()

	assert.Equal(t, "alice", acc.Username)
	assert.Equal(t, hasher.Hash([]byte("secret")), acc.PasswordHash)
	assert.Equal(t, Form{}, s.Form())
	assert.True(t, s.IsLoggedIn())
}

func TestSubmitLogin_EmptyBuffersStillLogIn(t *testing.T) {
	s := NewState(nil)

	acc := s.SubmitLogin()

	assert.True(t, s.IsLoggedIn())
	assert.Empty(t, acc.Username)
	assert.Equal(t, hasher.Hash(nil), acc.PasswordHash)
}
