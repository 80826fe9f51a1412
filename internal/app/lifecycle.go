package app

import (
	"os"

	"word-counter/internal/debug"
	"word-counter/internal/gui"
	"word-counter/internal/shutdown"
)

// Lifecycle owns the ordered shutdown of the application's components.
type Lifecycle struct {
	shutdown   *shutdown.Manager
	debugCoord debug.Coordinator
	logger     debug.Logger
}

func NewLifecycle(sm *shutdown.Manager, dc debug.Coordinator, gm *gui.Manager) *Lifecycle {
	// Debug coordinator registers first so it shuts down last and captures
	// every other component's shutdown.
	sm.Register("debug coordinator", dc)
	sm.Register("gui manager", gm)

	return &Lifecycle{
		shutdown:   sm,
		debugCoord: dc,
		logger:     dc.Logger(),
	}
}

func (l *Lifecycle) ListenForSignals(onSignal func(os.Signal)) {
	l.shutdown.Listen(onSignal)
}

func (l *Lifecycle) Shutdown() {
	l.shutdown.Shutdown()
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.shutdown.Done()
}
