package app

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/theme"
)

// ConsoleID is the widget ID the model pins below the page.
const ConsoleID = "console"

// Widget is one panel of the page. The model draws the border and the
// section heading; View returns the body only.
type Widget interface {
	ID() string
	Title() string
	Update(msg tea.Msg) tea.Cmd
	View(ctx ViewContext) string
	HandleKey(msg tea.KeyMsg) tea.Cmd
}

// Initializer is implemented by widgets with startup work.
type Initializer interface {
	Init() tea.Cmd
}

// Focusable is implemented by widgets that track focus themselves, such as
// the console's text input.
type Focusable interface {
	Focus() tea.Cmd
	Blur()
}

// KeyConsumer is implemented by widgets that claim keys ahead of the
// global bindings while focused.
type KeyConsumer interface {
	Consumes(msg tea.KeyMsg) bool
}

// Clickable is implemented by widgets with mouse zones. Zones lists the
// IDs the widget marks; Click runs the action for one of them.
type Clickable interface {
	Zones() []string
	Click(id string) tea.Cmd
}

// ViewContext is what a widget needs to draw itself.
type ViewContext struct {
	Width    int
	Palette  theme.Palette
	Focused  bool
	Expanded bool

	zones *zone.Manager
}

// Mark wraps s in a mouse zone. Without a zone manager s is returned as is.
func (c ViewContext) Mark(id, s string) string {
	if c.zones == nil {
		return s
	}
	return c.zones.Mark(id, s)
}
