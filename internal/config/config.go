package config

import (
	"os"

	"word-counter/internal/debug"
	"word-counter/internal/debug/logger"
	"word-counter/internal/theme"
)

const (
	AppName       = "Word Counter"
	AppID         = "com.wordcounter.app"
	AppVersion    = "1.0.0"
	WindowWidth   = 480
	WindowHeight  = 640
	DefaultTheme  = theme.Light
	EnvLogLevel   = "WORDCOUNTER_LOG_LEVEL"
	EnvJSONLogs   = "WORDCOUNTER_JSON_LOGS"
	EnvProduction = "WORDCOUNTER_PRODUCTION"
)

// Config is the fixed application configuration plus diagnostics settings.
type Config struct {
	Title        string
	ID           string
	Version      string
	WindowWidth  float32
	WindowHeight float32
	DefaultTheme theme.Variant
	Debug        debug.Config
}

// Load returns the application configuration. Only diagnostics read the
// environment; everything the user sees is fixed.
func Load() Config {
	return Config{
		Title:        AppName,
		ID:           AppID,
		Version:      AppVersion,
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		DefaultTheme: DefaultTheme,
		Debug:        debugConfig(os.Getenv),
	}
}

func debugConfig(getenv func(string) string) debug.Config {
	if getenv(EnvProduction) == "true" {
		return debug.ProductionConfig()
	}

	config := debug.DefaultConfig()
	config.LogLevel = logger.ParseLevel(getenv(EnvLogLevel), logger.LevelError)

	if getenv(EnvJSONLogs) == "true" {
		config.UseJSONLogging = true
	}

	return config
}
