// Command word-counter is a desktop application that counts word
// frequencies in entered text.
//
// On Windows build with -ldflags -H=windowsgui so no console window opens.
package main

import (
	"os"

	"word-counter/internal/app"
	"word-counter/internal/config"
	"word-counter/internal/debug"
)

func main() {
	cfg := config.Load()
	debugCoord := debug.NewCoordinator(cfg.Debug)
	logger := debugCoord.Logger()

	application, err := app.NewApplication(cfg, debugCoord)
	if err != nil {
		logger.Error("Main", err, map[string]interface{}{"stage": "initialization"})
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		logger.Error("Main", err, map[string]interface{}{"stage": "run"})
		os.Exit(1)
	}
}
