package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/app"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/components"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/state"
)

// SkillsWidget shows one card of tags per skill group.
type SkillsWidget struct {
	store *state.Store
}

// NewSkillsWidget creates the skills panel.
func NewSkillsWidget(store *state.Store) *SkillsWidget {
	return &SkillsWidget{store: store}
}

// ID implements app.Widget.
func (w *SkillsWidget) ID() string { return IDSkills }

// Title implements app.Widget.
func (w *SkillsWidget) Title() string { return w.store.Content().Sections.Skills }

// Update ignores messages; the panel renders from the store.
func (w *SkillsWidget) Update(tea.Msg) tea.Cmd { return nil }

// HandleKey ignores keys.
func (w *SkillsWidget) HandleKey(tea.KeyMsg) tea.Cmd { return nil }

// View renders a card per skill group with its tags flowed to fit.
func (w *SkillsWidget) View(ctx app.ViewContext) string {
	p := ctx.Palette
	cw := cardWidth(ctx.Width)
	inner := max(cw-4, 1)

	var cards []string
	for _, g := range w.store.Content().SkillGroups {
		body := p.Highlight().Render(g.Label) + "\n" + tagLines(g.Items, inner, p.Tag().Render)
		cards = append(cards, card(body, cw, p.Border))
	}
	return grid(cards, ctx.Width)
}

// tagLines flows rendered tags into lines no wider than width.
func tagLines(items []string, width int, render func(...string) string) string {
	var lines []string
	line, used := "", 0
	for _, it := range items {
		tag := render(it)
		tw := components.VisibleLen(tag)
		if used > 0 && used+1+tw > width {
			lines = append(lines, line)
			line, used = "", 0
		}
		if used > 0 {
			line += " "
			used++
		}
		line += tag
		used += tw
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
