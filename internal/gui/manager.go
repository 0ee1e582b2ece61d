package gui

import (
	"login-test/internal/gui/components"
	"login-test/internal/logger"
	"login-test/internal/view"

	"fyne.io/fyne/v2"
)

// Manager draws view.Describe(source) into the window and re-derives the
// whole screen after every login or logout. Keystrokes only update the
// session buffers so the focused entry is kept.
type Manager struct {
	window     fyne.Window
	source     view.Source
	logger     logger.Logger
	isShutdown bool

	loginForm   *components.LoginForm
	accountInfo *components.AccountInfo

	usernameChangeHandler func(string)
	passwordChangeHandler func(string)
	loginHandler          func()
	logoutHandler         func()
}

func NewManager(window fyne.Window, source view.Source, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOp{}
	}

	return &Manager{
		window: window,
		source: source,
		logger: log,
	}
}

func (m *Manager) SetUsernameChangeHandler(handler func(string)) {
	m.usernameChangeHandler = handler
}

func (m *Manager) SetPasswordChangeHandler(handler func(string)) {
	m.passwordChangeHandler = handler
}

func (m *Manager) SetLoginHandler(handler func()) {
	m.loginHandler = handler
}

func (m *Manager) SetLogoutHandler(handler func()) {
	m.logoutHandler = handler
}

// Render must run on the UI thread.
func (m *Manager) Render() {
	if m.isShutdown {
		return
	}

	screen := view.Describe(m.source)

	if screen.Menu != nil {
		m.window.SetMainMenu(components.NewAccountMenu(screen.Menu, m.handleLogout))
	} else {
		m.window.SetMainMenu(nil)
	}

	switch {
	case screen.Login != nil:
		m.accountInfo = nil
		m.loginForm = components.NewLoginForm(screen.Login)
		m.loginForm.SetUsernameChangeHandler(m.handleUsernameChange)
		m.loginForm.SetPasswordChangeHandler(m.handlePasswordChange)
		m.loginForm.SetSubmitHandler(m.handleLogin)

		m.window.SetContent(m.loginForm.GetContainer())
		m.window.Canvas().Focus(m.loginForm.UsernameEntry)

	case screen.Account != nil:
		m.loginForm = nil
		m.accountInfo = components.NewAccountInfo(screen.Account)

		m.window.SetContent(m.accountInfo.GetContainer())
	}

	m.logger.Debug("GUIManager", "screen rendered", map[string]interface{}{
		"logged_in": screen.LoggedIn(),
	})
}

// LoginForm is nil while logged in.
func (m *Manager) LoginForm() *components.LoginForm {
	return m.loginForm
}

// AccountInfo is nil while logged out.
func (m *Manager) AccountInfo() *components.AccountInfo {
	return m.accountInfo
}

func (m *Manager) handleUsernameChange(value string) {
	if m.usernameChangeHandler != nil {
		m.usernameChangeHandler(value)
	}
}

func (m *Manager) handlePasswordChange(value string) {
	if m.passwordChangeHandler != nil {
		m.passwordChangeHandler(value)
	}
}

func (m *Manager) handleLogin() {
	if m.loginHandler != nil {
		m.loginHandler()
	}
	m.Render()
}

func (m *Manager) handleLogout() {
	if m.logoutHandler != nil {
		m.logoutHandler()
	}
	m.Render()
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
