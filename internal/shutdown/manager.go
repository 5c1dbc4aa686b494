package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"flashcards/internal/logger"
)

type Shutdownable interface {
	Shutdown()
}

// ShutdownFunc adapts a plain function to Shutdownable.
type ShutdownFunc func()

func (f ShutdownFunc) Shutdown() { f() }

type component struct {
	name string
	c    Shutdownable
}

// Manager shuts registered components down in reverse registration order, once.
type Manager struct {
	components []component
	logger     logger.Logger
	timeout    time.Duration
	mu         sync.Mutex
	done       chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		logger:  log.WithComponent("shutdown"),
		timeout: 10 * time.Second,
		done:    make(chan struct{}),
	}
}

func (m *Manager) Register(name string, c Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component{name: name, c: c})
}

// Listen calls onSignal when the process receives SIGINT or SIGTERM.
// It returns immediately.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			m.logger.Info("Shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			if onSignal != nil {
				onSignal()
			}
		case <-m.done:
		}
	}()
}

// Shutdown runs every component's Shutdown. Later calls do nothing.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info("Shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	for i := len(m.components) - 1; i >= 0; i-- {
		comp := m.components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			comp.c.Shutdown()
		}()

		select {
		case <-finished:
			m.logger.Debug("Component shut down", map[string]interface{}{"component": comp.name})
		case <-time.After(m.timeout):
			m.logger.Warning("Component shutdown timeout", map[string]interface{}{
				"component": comp.name,
			})
		}
	}

	m.logger.Info("Shutdown sequence completed", nil)
}
