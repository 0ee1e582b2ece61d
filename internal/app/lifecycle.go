package app

import (
	"sync"

	"login-test/internal/gui"
	"login-test/internal/logger"
	"login-test/internal/session"
)

// Lifecycle tears the application down once. Concurrent callers block
// until the first teardown has finished.
type Lifecycle struct {
	state      *session.State
	guiManager *gui.Manager
	logger     logger.Logger
	once       sync.Once
}

func NewLifecycle(state *session.State, gm *gui.Manager, log logger.Logger) *Lifecycle {
	if log == nil {
		log = logger.NoOp{}
	}

	return &Lifecycle{
		state:      state,
		guiManager: gm,
		logger:     log,
	}
}

func (l *Lifecycle) Shutdown() {
	l.once.Do(l.shutdown)
}

func (l *Lifecycle) shutdown() {
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	// The account only ever lives in memory; drop it before exit.
	if l.state != nil {
		l.state.Logout()
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
