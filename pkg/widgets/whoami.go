package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/app"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/state"
)

// WhoamiWidget lists the highlights next to the current interests.
type WhoamiWidget struct {
	store *state.Store
}

// NewWhoamiWidget creates the highlights and interests panel.
func NewWhoamiWidget(store *state.Store) *WhoamiWidget {
	return &WhoamiWidget{store: store}
}

// ID implements app.Widget.
func (w *WhoamiWidget) ID() string { return IDWhoami }

// Title implements app.Widget.
func (w *WhoamiWidget) Title() string { return w.store.Content().Sections.Whoami }

// Update ignores messages; the panel renders from the store.
func (w *WhoamiWidget) Update(tea.Msg) tea.Cmd { return nil }

// HandleKey ignores keys.
func (w *WhoamiWidget) HandleKey(tea.KeyMsg) tea.Cmd { return nil }

// View puts the two lists side by side when there is room for both.
func (w *WhoamiWidget) View(ctx app.ViewContext) string {
	p := ctx.Palette
	c := w.store.Content()

	colW := ctx.Width
	sideBySide := ctx.Width >= 2*minCardWidth+2
	if sideBySide {
		colW = (ctx.Width - 2) / 2
	}

	highlights := bulletList(c.Highlights, colW, p.Highlight(), p.Text())
	interests := p.Heading().Render(c.Sections.Interests) + "\n" +
		wrapped(c.Hero.LikesIntro, colW, p.Muted()) + "\n" +
		bulletList(c.Hero.Likes, colW, p.Highlight(), p.Text())

	if !sideBySide {
		return highlights + "\n\n" + interests
	}
	left := lipgloss.NewStyle().Width(colW).Render(highlights)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", interests)
}
