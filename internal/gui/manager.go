package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"word-counter/internal/debug"
	"word-counter/internal/gui/components"
	"word-counter/internal/state"
	"word-counter/internal/theme"
)

// Manager binds the word counter widgets to the state store.
type Manager struct {
	app        fyne.App
	window     fyne.Window
	store      *state.Store
	logger     debug.Logger
	timing     debug.TimingTracker
	isShutdown bool

	themePicker *components.ThemePicker
	inputBar    *components.InputBar
	countsList  *components.CountsList

	appliedTheme theme.Variant
	themeApplied bool
}

func NewManager(app fyne.App, window fyne.Window, store *state.Store, debugCoord debug.Coordinator) *Manager {
	manager := &Manager{
		app:         app,
		window:      window,
		store:       store,
		logger:      debugCoord.Logger(),
		timing:      debugCoord.TimingTracker(),
		themePicker: components.NewThemePicker(),
		inputBar:    components.NewInputBar(),
		countsList:  components.NewCountsList(),
	}

	manager.themePicker.SetThemeChangeHandler(manager.handleThemeChange)
	manager.inputBar.SetInputChangeHandler(manager.handleInputChange)
	manager.inputBar.SetCalculateHandler(manager.handleCalculate)

	store.Subscribe(manager.render)
	manager.render(store.State())

	manager.logger.Info("GUIManager", "initialized", map[string]interface{}{
		"theme": store.State().Theme.String(),
	})

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return container.NewPadded(container.NewVBox(
		m.themePicker.GetContainer(),
		m.inputBar.GetContainer(),
		m.countsList.GetContainer(),
	))
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) handleInputChange(text string) {
	m.store.Dispatch(state.InputChanged{Text: text})
}

func (m *Manager) handleCalculate() {
	stop := m.timing.Start("calculate")
	s := m.store.Dispatch(state.Calculate{})
	elapsed := stop()

	m.logger.Debug("GUIManager", "counts calculated", map[string]interface{}{
		"words":    s.Counts.Total(),
		"unique":   len(s.Counts),
		"duration": elapsed.String(),
	})
}

func (m *Manager) handleThemeChange(label string) {
	variant, err := theme.Parse(label)
	if err != nil {
		m.logger.Error("GUIManager", err, map[string]interface{}{
			"label": label,
		})
		return
	}

	m.store.Dispatch(state.ThemeChanged{Variant: variant})
}

func (m *Manager) render(s state.State) {
	if m.isShutdown {
		return
	}

	m.inputBar.SetText(s.Input)
	m.themePicker.SetSelected(s.Theme.String())
	m.countsList.SetEntries(s.Counts.Entries())
	m.applyTheme(s.Theme)
}

func (m *Manager) applyTheme(variant theme.Variant) {
	if m.themeApplied && m.appliedTheme == variant {
		return
	}

	m.app.Settings().SetTheme(theme.New(variant))
	m.appliedTheme = variant
	m.themeApplied = true

	m.logger.Debug("GUIManager", "theme applied", map[string]interface{}{
		"theme": variant.String(),
	})
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
