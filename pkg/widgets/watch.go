package widgets

import (
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/app"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/state"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/theme"
)

// WatchWidget prints the profile's status script lines.
type WatchWidget struct {
	store *state.Store
}

// NewWatchWidget creates the terminal watch list panel.
func NewWatchWidget(store *state.Store) *WatchWidget {
	return &WatchWidget{store: store}
}

// ID implements app.Widget.
func (w *WatchWidget) ID() string { return IDWatch }

// Title implements app.Widget.
func (w *WatchWidget) Title() string { return w.store.Content().Sections.Watch }

// Update ignores messages; the panel renders from the store.
func (w *WatchWidget) Update(tea.Msg) tea.Cmd { return nil }

// HandleKey ignores keys.
func (w *WatchWidget) HandleKey(tea.KeyMsg) tea.Cmd { return nil }

// View implements app.Widget.
func (w *WatchWidget) View(ctx app.ViewContext) string {
	p := ctx.Palette
	return bulletList(w.store.Content().TerminalLines, ctx.Width, theme.Fg(p.OK), p.Text())
}
