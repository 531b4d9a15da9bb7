package widgets

import (
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/app"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/state"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/theme"
)

// StatusWidget shows the drifting telemetry tiles, each bordered in its
// tone color.
type StatusWidget struct {
	store *state.Store
}

// NewStatusWidget creates the status tile panel.
func NewStatusWidget(store *state.Store) *StatusWidget {
	return &StatusWidget{store: store}
}

// ID implements app.Widget.
func (w *StatusWidget) ID() string { return IDStatus }

// Title implements app.Widget.
func (w *StatusWidget) Title() string { return w.store.Content().Sections.Status }

// Update ignores messages; the panel renders from the store.
func (w *StatusWidget) Update(tea.Msg) tea.Cmd { return nil }

// HandleKey ignores keys.
func (w *StatusWidget) HandleKey(tea.KeyMsg) tea.Cmd { return nil }

// View lays the tiles out as a card grid.
func (w *StatusWidget) View(ctx app.ViewContext) string {
	p := ctx.Palette
	cw := cardWidth(ctx.Width)

	tiles := w.store.Board().Tiles()
	cards := make([]string, 0, len(tiles))
	for _, t := range tiles {
		tone := p.ToneColor(t.Tone)
		body := p.Muted().Render(t.Label) + "\n" +
			theme.Fg(tone).Bold(true).Render(t.Value) + "\n" +
			p.Muted().Render(t.Detail)
		cards = append(cards, card(body, cw, tone))
	}
	return grid(cards, ctx.Width)
}
