// Package session holds the single logged-in/logged-out state of the demo
// together with the login form's input buffers.
//
// State is owned by the application and only touched from the UI thread,
// so it does no locking.
package session

import "login-test/internal/hasher"

// Digester maps password bytes to a hex digest.
type Digester interface {
	Hash(password []byte) string
}

// Form holds the transient login inputs.
type Form struct {
	Username string
	Password string
}

type State struct {
	account  *Account
	form     Form
	digester Digester
}

// NewState returns a logged-out state. A nil digester selects SHA-512.
func NewState(d Digester) *State {
	if d == nil {
		d = hasher.Default()
	}
	return &State{digester: d}
}

// Login replaces any current account with a new one for username. There is
// nothing to verify against, so it always succeeds.
func (s *State) Login(username, password string) {
	s.account = newAccount(username, s.digester.Hash([]byte(password)))
}

// Logout drops the account. Calling it while logged out does nothing.
func (s *State) Logout() {
	s.account = nil
}

func (s *State) IsLoggedIn() bool {
	return s.account != nil
}

// CurrentAccount returns a copy of the account, if any.
func (s *State) CurrentAccount() (Account, bool) {
	if s.account == nil {
		return Account{}, false
	}
	return *s.account, true
}

func (s *State) Form() Form {
	return s.form
}

func (s *State) SetUsernameInput(v string) {
	s.form.Username = v
}

func (s *State) SetPasswordInput(v string) {
	s.form.Password = v
}

// SubmitLogin logs in with the buffered inputs and clears both buffers.
// It returns the new account.
func (s *State) SubmitLogin() Account {
	s.Login(s.form.Username, s.form.Password)
	s.form = Form{}
	return *s.account
}
