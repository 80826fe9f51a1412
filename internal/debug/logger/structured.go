package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelDisabled
)

// ParseLevel maps a level name to a Level, falling back to def.
func ParseLevel(name string, def Level) Level {
	switch name {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	case "disabled", "off":
		return LevelDisabled
	default:
		return def
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// StructuredLogger writes timestamped entries tagged with the emitting component.
type StructuredLogger struct {
	logger zerolog.Logger
}

func NewStructuredLogger(writer io.Writer, level Level, useJSON bool) *StructuredLogger {
	if !useJSON {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.DateTime, NoColor: true}
	}

	logger := zerolog.New(writer).
		Level(level.zerolog()).
		With().
		Timestamp().
		Logger()

	return &StructuredLogger{logger: logger}
}

func (sl *StructuredLogger) Info(component string, message string, fields map[string]interface{}) {
	sl.logger.Info().Str("component", component).Fields(fields).Msg(message)
}

func (sl *StructuredLogger) Error(component string, err error, fields map[string]interface{}) {
	sl.logger.Error().Str("component", component).Err(err).Fields(fields).Msg("operation failed")
}

func (sl *StructuredLogger) Warning(component string, message string, fields map[string]interface{}) {
	sl.logger.Warn().Str("component", component).Fields(fields).Msg(message)
}

func (sl *StructuredLogger) Debug(component string, message string, fields map[string]interface{}) {
	sl.logger.Debug().Str("component", component).Fields(fields).Msg(message)
}

// NoOpLogger discards everything
type NoOpLogger struct{}

func (n NoOpLogger) Info(component string, message string, fields map[string]interface{})    {}
func (n NoOpLogger) Error(component string, err error, fields map[string]interface{})        {}
func (n NoOpLogger) Warning(component string, message string, fields map[string]interface{}) {}
func (n NoOpLogger) Debug(component string, message string, fields map[string]interface{})   {}
