// Package state holds the application state record and the reducer that
// advances it one event at a time.
package state

import (
	"word-counter/internal/theme"
	"word-counter/internal/wordcount"
)

// State is the whole application state for one event-handling turn.
// The zero value is the start state.
type State struct {
	Input  string
	Counts wordcount.Tally
	Theme  theme.Variant
}

// Event is a user action delivered by the view.
type Event interface {
	eventName() string
}

// InputChanged replaces the input text.
type InputChanged struct {
	Text string
}

// Calculate normalizes the input and recounts it.
type Calculate struct{}

// ThemeChanged selects a theme.
type ThemeChanged struct {
	Variant theme.Variant
}

func (InputChanged) eventName() string { return "input_changed" }
func (Calculate) eventName() string    { return "calculate" }
func (ThemeChanged) eventName() string { return "theme_changed" }

// Reduce returns the state that follows s after ev. It never mutates s.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case InputChanged:
		s.Input = ev.Text
	case Calculate:
		// The visible input is replaced by its normalized form.
		s.Input = wordcount.Normalize(s.Input)
		s.Counts = wordcount.Count(s.Input)
	case ThemeChanged:
		s.Theme = ev.Variant
	}
	return s
}
