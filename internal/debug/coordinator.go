package debug

import (
	"io"
	"os"

	"word-counter/internal/debug/logger"
	"word-counter/internal/debug/timing"
)

type Config struct {
	EnableLogging        bool
	EnableTimingTracking bool
	UseJSONLogging       bool
	LogLevel             logger.Level
	Output               io.Writer
}

func DefaultConfig() Config {
	return Config{
		EnableLogging:        true,
		EnableTimingTracking: true,
		UseJSONLogging:       false,
		LogLevel:             logger.LevelInfo,
		Output:               os.Stderr,
	}
}

func ProductionConfig() Config {
	return Config{
		EnableLogging:        true,
		EnableTimingTracking: false,
		UseJSONLogging:       true,
		LogLevel:             logger.LevelError,
		Output:               os.Stderr,
	}
}

type DebugCoordinator struct {
	logger        Logger
	timingTracker *timing.Tracker
}

func NewCoordinator(config Config) *DebugCoordinator {
	var loggerImpl Logger
	if config.EnableLogging && config.LogLevel != logger.LevelDisabled {
		out := config.Output
		if out == nil {
			out = os.Stderr
		}
		loggerImpl = logger.NewStructuredLogger(out, config.LogLevel, config.UseJSONLogging)
	} else {
		loggerImpl = logger.NoOpLogger{}
	}

	tracker := timing.NewTracker()
	tracker.SetEnabled(config.EnableTimingTracking)

	return &DebugCoordinator{
		logger:        loggerImpl,
		timingTracker: tracker,
	}
}

func (dc *DebugCoordinator) Logger() Logger {
	return dc.logger
}

func (dc *DebugCoordinator) TimingTracker() TimingTracker {
	return dc.timingTracker
}

func (dc *DebugCoordinator) Shutdown() {
	for _, op := range dc.timingTracker.Operations() {
		dc.logger.Debug("DebugCoordinator", "timing summary", map[string]interface{}{
			"operation": op,
			"count":     len(dc.timingTracker.Timings(op)),
			"average":   dc.timingTracker.Average(op).String(),
		})
	}
	dc.timingTracker.Reset("")
}
