package debug

import "time"

// Logger provides component-scoped structured logging
type Logger interface {
	Info(component string, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component string, message string, fields map[string]interface{})
	Debug(component string, message string, fields map[string]interface{})
}

// TimingTracker measures how long named operations take
type TimingTracker interface {
	Start(operation string) func() time.Duration
	Timings(operation string) []time.Duration
	Average(operation string) time.Duration
}

// Coordinator combines the debug capabilities handed to the GUI and app layers
type Coordinator interface {
	Logger() Logger
	TimingTracker() TimingTracker
	Shutdown()
}
