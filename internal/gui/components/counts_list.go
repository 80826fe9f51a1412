package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"word-counter/internal/wordcount"
)

// CountsList shows one "word: count" label per tallied word.
type CountsList struct {
	container *fyne.Container
	list      *fyne.Container
}

func NewCountsList() *CountsList {
	list := container.NewVBox()

	return &CountsList{
		container: container.NewPadded(list),
		list:      list,
	}
}

func (c *CountsList) GetContainer() *fyne.Container {
	return c.container
}

func (c *CountsList) SetEntries(entries []wordcount.Entry) {
	objects := make([]fyne.CanvasObject, len(entries))
	for i, entry := range entries {
		objects[i] = widget.NewLabel(entry.String())
	}

	c.list.Objects = objects
	c.list.Refresh()
}

// Lines returns the text of every label, top to bottom.
func (c *CountsList) Lines() []string {
	lines := make([]string, 0, len(c.list.Objects))
	for _, obj := range c.list.Objects {
		if label, ok := obj.(*widget.Label); ok {
			lines = append(lines, label.Text)
		}
	}
	return lines
}
