package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"login-test/internal/logger"
)

const DefaultComponentTimeout = 10 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Manager turns SIGINT/SIGTERM into a single ordered shutdown of the
// registered components.
type Manager struct {
	components []Shutdownable
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	started    bool
	done       chan struct{}
	sigChan    chan os.Signal
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		components: make([]Shutdownable, 0),
		logger:     log,
		timeout:    DefaultComponentTimeout,
		done:       make(chan struct{}),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SetComponentTimeout bounds how long Shutdown waits on each component.
func (m *Manager) SetComponentTimeout(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.timeout = d
}

func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

func (m *Manager) Listen() {
	m.mu.Lock()
	if m.sigChan != nil {
		m.mu.Unlock()
		return
	}
	m.sigChan = make(chan os.Signal, 1)
	sigChan := m.sigChan
	m.mu.Unlock()

	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.ctx.Done():
		}
	}()
}

// Shutdown runs the components once, newest first.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return
	}
	m.started = true

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	m.cancel()

	for i := len(m.components) - 1; i >= 0; i-- {
		component := m.components[i]

		done := make(chan struct{})
		go func() {
			defer close(done)
			component.Shutdown()
		}()

		select {
		case <-done:
		case <-time.After(m.timeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component_index": i,
			})
		}
	}

	m.stopSignals()
	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
	close(m.done)
}

// Close stops listening without running the components. Use it when the
// application already exited through the UI.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cancel()
	m.stopSignals()
}

func (m *Manager) stopSignals() {
	if m.sigChan != nil {
		signal.Stop(m.sigChan)
	}
}

func (m *Manager) Context() context.Context {
	return m.ctx
}

// Done is closed once every component has run or timed out.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
