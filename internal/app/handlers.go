package app

import (
	"time"

	"login-test/internal/logger"
	"login-test/internal/session"
)

// Handlers applies GUI events to the session state. They are called on the
// UI thread; the GUI re-renders after login and logout.
type Handlers struct {
	state     *session.State
	algorithm string
	logger    logger.Logger
}

func NewHandlers(state *session.State, algorithm string, log logger.Logger) *Handlers {
	if log == nil {
		log = logger.NoOp{}
	}

	return &Handlers{
		state:     state,
		algorithm: algorithm,
		logger:    log,
	}
}

func (h *Handlers) HandleUsernameChange(value string) {
	h.state.SetUsernameInput(value)
}

func (h *Handlers) HandlePasswordChange(value string) {
	h.state.SetPasswordInput(value)
}

// HandleLogin never logs the password, and the digest only at debug level.
func (h *Handlers) HandleLogin() {
	replaced, wasLoggedIn := h.state.CurrentAccount()

	acc := h.state.SubmitLogin()

	fields := map[string]interface{}{
		"username":       acc.Username,
		"session_id":     acc.SessionID.String(),
		"hash_algorithm": h.algorithm,
	}
	if wasLoggedIn {
		fields["replaced_session_id"] = replaced.SessionID.String()
	}
	h.logger.Info("Handlers", "logged in", fields)

	h.logger.Debug("Handlers", "password digest computed", map[string]interface{}{
		"session_id":    acc.SessionID.String(),
		"password_hash": acc.PasswordHash,
	})
}

func (h *Handlers) HandleLogout() {
	acc, ok := h.state.CurrentAccount()
	h.state.Logout()

	if !ok {
		h.logger.Debug("Handlers", "logout while logged out", nil)
		return
	}

	h.logger.Info("Handlers", "logged out", map[string]interface{}{
		"username":   acc.Username,
		"session_id": acc.SessionID.String(),
		"duration":   time.Since(acc.CreatedAt).Round(time.Millisecond).String(),
	})
}
