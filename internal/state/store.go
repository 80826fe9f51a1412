package state

import (
	"sync"

	"word-counter/internal/debug"
)

// Store owns the current State and applies events to it in order.
type Store struct {
	mu          sync.Mutex
	state       State
	subscribers []func(State)
	logger      debug.Logger
}

func NewStore(initial State, logger debug.Logger) *Store {
	return &Store{
		state:  initial,
		logger: logger,
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to receive every new state after a dispatch.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Dispatch reduces ev into the current state and notifies subscribers.
// Subscribers run after the lock is released so they may dispatch again.
func (s *Store) Dispatch(ev Event) State {
	s.mu.Lock()
	next := Reduce(s.state, ev)
	s.state = next
	subscribers := make([]func(State), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	s.logger.Debug("Store", "event dispatched", map[string]interface{}{
		"event":       ev.eventName(),
		"input_bytes": len(next.Input),
		"unique":      len(next.Counts),
		"theme":       next.Theme.String(),
	})

	for _, fn := range subscribers {
		fn(next)
	}

	return next
}
