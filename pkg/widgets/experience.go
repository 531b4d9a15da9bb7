package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/app"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/state"
)

// ExperienceWidget is the timeline of roles.
type ExperienceWidget struct {
	store *state.Store
}

// NewExperienceWidget creates the work history panel.
func NewExperienceWidget(store *state.Store) *ExperienceWidget {
	return &ExperienceWidget{store: store}
}

// ID implements app.Widget.
func (w *ExperienceWidget) ID() string { return IDExperience }

// Title implements app.Widget.
func (w *ExperienceWidget) Title() string { return w.store.Content().Sections.Experience }

// Update ignores messages; the panel renders from the store.
func (w *ExperienceWidget) Update(tea.Msg) tea.Cmd { return nil }

// HandleKey ignores keys.
func (w *ExperienceWidget) HandleKey(tea.KeyMsg) tea.Cmd { return nil }

// View renders a card per role with its period, focus and bullets.
func (w *ExperienceWidget) View(ctx app.ViewContext) string {
	p := ctx.Palette
	inner := max(ctx.Width-4, 1)

	var cards []string
	for _, e := range w.store.Content().Experiences {
		head := p.Highlight().Render(e.Company)
		period := p.Muted().Render(e.Period)
		if gap := inner - lipgloss.Width(head) - lipgloss.Width(period); gap > 0 {
			head += strings.Repeat(" ", gap) + period
		} else {
			head += "\n" + period
		}
		body := strings.Join([]string{
			head,
			p.Text().Bold(true).Render(e.Role),
			wrapped(e.Focus, inner, p.Muted().Italic(true)),
			bulletList(e.Bullets, inner, p.Highlight(), p.Text()),
		}, "\n")
		cards = append(cards, card(body, ctx.Width, p.Border))
	}
	return strings.Join(cards, "\n")
}
