package app

import (
	"fmt"
	"os"

	"word-counter/internal/config"
	"word-counter/internal/debug"
	"word-counter/internal/gui"
	"word-counter/internal/shutdown"
	"word-counter/internal/state"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     config.Config
	store      *state.Store
	guiManager *gui.Manager
	debugCoord debug.Coordinator
	lifecycle  *Lifecycle
}

// NewApplication creates the desktop application backed by Fyne's driver.
func NewApplication(cfg config.Config, debugCoord debug.Coordinator) (*Application, error) {
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      cfg.ID,
		Name:    cfg.Title,
		Version: cfg.Version,
	})

	return newApplication(fyneapp.NewWithID(cfg.ID), cfg, debugCoord)
}

func newApplication(fyneApp fyne.App, cfg config.Config, debugCoord debug.Coordinator) (*Application, error) {
	if fyneApp == nil {
		return nil, fmt.Errorf("create application %q: no fyne app", cfg.ID)
	}
	if debugCoord == nil {
		return nil, fmt.Errorf("create application %q: no debug coordinator", cfg.ID)
	}

	window := fyneApp.NewWindow(cfg.Title)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	logger := debugCoord.Logger()

	logger.Info("Application", "starting application", map[string]interface{}{
		"version":       cfg.Version,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
		"theme":         cfg.DefaultTheme.String(),
	})

	store := state.NewStore(state.State{Theme: cfg.DefaultTheme}, logger)
	guiManager := gui.NewManager(fyneApp, window, store, debugCoord)

	shutdownMgr := shutdown.NewManager(logger, shutdown.DefaultStepTimeout)
	lifecycle := NewLifecycle(shutdownMgr, debugCoord, guiManager)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		config:     cfg,
		store:      store,
		guiManager: guiManager,
		debugCoord: debugCoord,
		lifecycle:  lifecycle,
	}

	window.SetContent(guiManager.GetMainContainer())

	logger.Info("Application", "initialization complete", nil)
	return application, nil
}

// Run shows the window and blocks until the application quits.
func (a *Application) Run() error {
	logger := a.debugCoord.Logger()

	a.window.SetCloseIntercept(func() {
		logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.lifecycle.ListenForSignals(func(sig os.Signal) {
		fyne.Do(func() {
			a.lifecycle.Shutdown()
			a.fyneApp.Quit()
		})
	})

	a.window.Show()

	logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}

func (a *Application) Store() *state.Store {
	return a.store
}

func (a *Application) Window() fyne.Window {
	return a.window
}
