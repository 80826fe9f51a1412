package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// InputBar holds the text entry and the Calculate button.
type InputBar struct {
	container       *fyne.Container
	Entry           *widget.Entry
	CalculateButton *widget.Button

	inputChangeHandler func(string)
	calculateHandler   func()
}

func NewInputBar() *InputBar {
	bar := &InputBar{}

	bar.Entry = widget.NewEntry()
	bar.Entry.SetPlaceHolder("Enter text here...")
	bar.Entry.OnChanged = bar.onInputChanged
	bar.Entry.OnSubmitted = func(string) { bar.onCalculate() }

	bar.CalculateButton = widget.NewButton("Calculate", bar.onCalculate)
	bar.CalculateButton.Importance = widget.HighImportance

	bar.container = container.NewVBox(
		bar.Entry,
		container.NewCenter(bar.CalculateButton),
	)

	return bar
}

func (b *InputBar) GetContainer() *fyne.Container {
	return b.container
}

func (b *InputBar) SetInputChangeHandler(handler func(string)) {
	b.inputChangeHandler = handler
}

func (b *InputBar) SetCalculateHandler(handler func()) {
	b.calculateHandler = handler
}

// SetText replaces the entry text without notifying the input handler.
func (b *InputBar) SetText(text string) {
	if b.Entry.Text == text {
		return
	}

	handler := b.inputChangeHandler
	b.inputChangeHandler = nil
	b.Entry.SetText(text)
	b.inputChangeHandler = handler
}

func (b *InputBar) onInputChanged(text string) {
	if b.inputChangeHandler != nil {
		b.inputChangeHandler(text)
	}
}

func (b *InputBar) onCalculate() {
	if b.calculateHandler != nil {
		b.calculateHandler()
	}
}
