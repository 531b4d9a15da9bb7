package widgets

import (
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/app"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/state"
)

// ShortcutsWidget shows the key-combo cards.
type ShortcutsWidget struct {
	store *state.Store
}

// NewShortcutsWidget creates the keyboard shortcuts panel.
func NewShortcutsWidget(store *state.Store) *ShortcutsWidget {
	return &ShortcutsWidget{store: store}
}

// ID implements app.Widget.
func (w *ShortcutsWidget) ID() string { return IDShortcuts }

// Title implements app.Widget.
func (w *ShortcutsWidget) Title() string { return w.store.Content().Sections.Shortcuts }

// Update ignores messages; the panel renders from the store.
func (w *ShortcutsWidget) Update(tea.Msg) tea.Cmd { return nil }

// HandleKey ignores keys.
func (w *ShortcutsWidget) HandleKey(tea.KeyMsg) tea.Cmd { return nil }

// View lays the shortcuts out as a card grid.
func (w *ShortcutsWidget) View(ctx app.ViewContext) string {
	p := ctx.Palette
	cw := cardWidth(ctx.Width)
	inner := max(cw-4, 1)

	var cards []string
	for _, s := range w.store.Content().Shortcuts {
		body := wrapped(s.Combo, inner, p.Highlight()) + "\n" + wrapped(s.Desc, inner, p.Muted())
		cards = append(cards, card(body, cw, p.Border))
	}
	return grid(cards, ctx.Width)
}
