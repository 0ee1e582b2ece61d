package gui

import (
	"testing"

	"login-test/internal/hasher"
	"login-test/internal/logger"
	"login-test/internal/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, *session.State, fyne.Window) {
	t.Helper()
	test.NewTempApp(t)

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	state := session.NewState(nil)
	m := NewManager(w, state, logger.NoOp{})
	m.SetUsernameChangeHandler(state.SetUsernameInput)
	m.SetPasswordChangeHandler(state.SetPasswordInput)
	m.SetLoginHandler(func() { state.SubmitLogin() })
	m.SetLogoutHandler(state.Logout)
	m.Render()

	return m, state, w
}

func logoutItem(t *testing.T, w fyne.Window) *fyne.MenuItem {
	t.Helper()
	menu := w.MainMenu()
	require.NotNil(t, menu)
	require.Len(t, menu.Items, 1)
	items := menu.Items[0].Items
	require.Len(t, items, 3)
	return items[2]
}

func TestManager_InitialScreenIsLogin(t *testing.T) {
	m, _, w := newTestManager(t)

	require.NotNil(t, m.LoginForm())
	assert.Nil(t, m.AccountInfo())
	assert.Nil(t, w.MainMenu())
	assert.Equal(t, "Login", m.LoginForm().LoginButton.Text)
	assert.Equal(t, m.LoginForm().GetContainer(), w.Content())
}

func TestManager_TypingFillsBuffers(t *testing.T) {
	m, state, _ := newTestManager(t)

	test.Type(m.LoginForm().UsernameEntry, "alice")
	test.Type(m.LoginForm().PasswordEntry, "secret")

	assert.Equal(t, session.Form{Username: "alice", Password: "secret"}, state.Form())
	assert.False(t, state.IsLoggedIn())
}

func TestManager_LoginShowsAccount(t *testing.T) {
	m, state, w := newTestManager(t)

	test.Type(m.LoginForm().UsernameEntry, "alice")
	test.Type(m.LoginForm().PasswordEntry, "secret")
	test.Tap(m.LoginForm().LoginButton)

	require.True(t, state.IsLoggedIn())
	assert.Equal(t, session.Form{}, state.Form())

	assert.Nil(t, m.LoginForm())
	require.NotNil(t, m.AccountInfo())
	assert.Equal(t, "alice", m.AccountInfo().Username())
	assert.Equal(t, hasher.Hash([]byte("secret")), m.AccountInfo().PasswordHash())
	assert.Equal(t, m.AccountInfo().GetContainer(), w.Content())

	menu := w.MainMenu()
	require.NotNil(t, menu)
	assert.Equal(t, "Account", menu.Items[0].Label)
	userItem := menu.Items[0].Items[0]
	assert.Equal(t, "alice", userItem.Label)
	assert.True(t, userItem.Disabled)
	assert.True(t, menu.Items[0].Items[1].IsSeparator)
	assert.Equal(t, "Log out", logoutItem(t, w).Label)
}

func TestManager_EnterInPasswordSubmits(t *testing.T) {
	m, state, _ := newTestManager(t)

	test.Type(m.LoginForm().UsernameEntry, "bob")
	m.LoginForm().PasswordEntry.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})

	require.True(t, state.IsLoggedIn())
	acc, _ := state.CurrentAccount()
	assert.Equal(t, "bob", acc.Username)
	assert.Equal(t, hasher.Hash(nil), m.AccountInfo().PasswordHash())
}

func TestManager_LogoutReturnsToEmptyLogin(t *testing.T) {
	m, state, w := newTestManager(t)

	test.Type(m.LoginForm().UsernameEntry, "alice")
	test.Type(m.LoginForm().PasswordEntry, "secret")
	test.Tap(m.LoginForm().LoginButton)

	logoutItem(t, w).Action()

	assert.False(t, state.IsLoggedIn())
	assert.Nil(t, w.MainMenu())
	assert.Nil(t, m.AccountInfo())
	require.NotNil(t, m.LoginForm())
	assert.Empty(t, m.LoginForm().UsernameEntry.Text)
	assert.Empty(t, m.LoginForm().PasswordEntry.Text)
}

func TestManager_ShutdownStopsRendering(t *testing.T) {
	m, state, w := newTestManager(t)
	before := w.Content()

	m.Shutdown()
	m.Shutdown()
	state.Login("alice", "secret")
	m.Render()

	assert.Equal(t, before, w.Content())
	assert.Nil(t, w.MainMenu())
}
