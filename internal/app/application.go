package app

import (
	"login-test/internal/config"
	"login-test/internal/errors"
	"login-test/internal/gui"
	"login-test/internal/hasher"
	"login-test/internal/logger"
	"login-test/internal/session"
	"login-test/internal/shutdown"
	"login-test/internal/view"

	"fyne.io/fyne/v2"
)

const (
	AppName    = view.WindowTitle
	AppID      = "io.github.logintest"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp     fyne.App
	window      fyne.Window
	guiManager  *gui.Manager
	state       *session.State
	logger      logger.Logger
	lifecycle   *Lifecycle
	shutdownMgr *shutdown.Manager
}

// NewApplication wires session state, handlers and the GUI into a single
// window on fyneApp. The window keeps the platform's default size.
func NewApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOp{}
	}

	h, err := hasher.New(cfg.HashAlgorithm)
	if err != nil {
		return nil, errors.Wrap(err, "create hasher")
	}

	window := fyneApp.NewWindow(AppName)
	window.SetMaster()

	state := session.NewState(h)
	guiManager := gui.NewManager(window, state, log)

	handlers := NewHandlers(state, h.Algorithm(), log)
	guiManager.SetUsernameChangeHandler(handlers.HandleUsernameChange)
	guiManager.SetPasswordChangeHandler(handlers.HandlePasswordChange)
	guiManager.SetLoginHandler(handlers.HandleLogin)
	guiManager.SetLogoutHandler(handlers.HandleLogout)

	application := &Application{
		fyneApp:     fyneApp,
		window:      window,
		guiManager:  guiManager,
		state:       state,
		logger:      log,
		lifecycle:   NewLifecycle(state, guiManager, log),
		shutdownMgr: shutdown.NewManager(log),
	}
	application.shutdownMgr.Register(shutdownFunc(application.quitFromSignal))

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":        AppVersion,
		"hash_algorithm": h.Algorithm(),
	})

	return application, nil
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) State() *session.State {
	return a.state
}

// show prepares the window without entering the event loop.
func (a *Application) show() {
	a.window.SetCloseIntercept(a.handleCloseRequest)

	a.guiManager.Render()
	a.window.Show()
}

// Run blocks until the window is closed or SIGINT/SIGTERM arrives.
func (a *Application) Run() error {
	a.shutdownMgr.Listen()
	a.show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	// Stop listening first so a late signal cannot start a second teardown.
	a.shutdownMgr.Close()
	a.lifecycle.Shutdown()
	return nil
}

func (a *Application) handleCloseRequest() {
	a.logger.Info("Application", "shutdown requested", nil)
	a.lifecycle.Shutdown()
	a.window.Close()
}

// quitFromSignal runs off the UI thread, so the state work is handed to it.
func (a *Application) quitFromSignal() {
	fyne.Do(func() {
		a.lifecycle.Shutdown()
		a.fyneApp.Quit()
	})
}

type shutdownFunc func()

func (f shutdownFunc) Shutdown() { f() }
