package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"word-counter/internal/theme"
)

// ThemePicker is the "Choose a theme:" row of radio buttons.
type ThemePicker struct {
	container *fyne.Container
	Radio     *widget.RadioGroup

	themeChangeHandler func(string)
}

func NewThemePicker() *ThemePicker {
	picker := &ThemePicker{}

	picker.Radio = widget.NewRadioGroup(theme.Labels(), picker.onThemeSelected)
	picker.Radio.Horizontal = true
	picker.Radio.Required = true
	picker.Radio.SetSelected(theme.Light.String())

	picker.container = container.NewHBox(
		widget.NewLabel("Choose a theme:"),
		picker.Radio,
	)

	return picker
}

func (p *ThemePicker) GetContainer() *fyne.Container {
	return p.container
}

func (p *ThemePicker) SetThemeChangeHandler(handler func(string)) {
	p.themeChangeHandler = handler
}

// SetSelected moves the selection without notifying the handler.
func (p *ThemePicker) SetSelected(label string) {
	if p.Radio.Selected == label {
		return
	}

	handler := p.themeChangeHandler
	p.themeChangeHandler = nil
	p.Radio.SetSelected(label)
	p.themeChangeHandler = handler
}

func (p *ThemePicker) onThemeSelected(label string) {
	if label == "" || p.themeChangeHandler == nil {
		return
	}
	p.themeChangeHandler(label)
}
