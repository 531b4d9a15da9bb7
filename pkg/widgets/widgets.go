// Package widgets holds the page panels of ttyfolio. Each widget
// implements app.Widget and reads its data from the state store at draw
// time, so a locale or theme switch shows up on the next frame.
package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/components"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/theme"
)

// Widget IDs, matching the layout panel names.
const (
	IDHero       = "hero"
	IDWhoami     = "whoami"
	IDExperience = "experience"
	IDStatus     = "status"
	IDShortcuts  = "shortcuts"
	IDLogs       = "logs"
	IDSkills     = "skills"
	IDWatch      = "watch"
	IDNeofetch   = "neofetch"
)

const (
	cardGap      = 1
	minCardWidth = 26
	bullet       = "▸ "
)

// bulletList wraps each item to width behind a bullet marker.
func bulletList(items []string, width int, marker, text lipgloss.Style) string {
	indent := components.VisibleLen(bullet)
	var lines []string
	for _, item := range items {
		for i, l := range components.Wrap(item, max(width-indent, 1)) {
			lead := strings.Repeat(" ", indent)
			if i == 0 {
				lead = marker.Render(bullet)
			}
			lines = append(lines, lead+text.Render(l))
		}
	}
	return strings.Join(lines, "\n")
}

// cardWidth splits width into as many columns of at least minCardWidth as
// fit and returns the column width.
func cardWidth(width int) int {
	n := max((width+cardGap)/(minCardWidth+cardGap), 1)
	return max((width-cardGap*(n-1))/n, 1)
}

// grid lays cards left to right, wrapping to a new row when the next card
// would overflow width.
func grid(cards []string, width int) string {
	var rows, row []string
	used := 0
	flush := func() {
		if len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		}
		row, used = nil, 0
	}
	for _, c := range cards {
		w := lipgloss.Width(c)
		if len(row) > 0 && used+cardGap+w > width {
			flush()
		}
		if len(row) > 0 {
			row = append(row, strings.Repeat(" ", cardGap))
			used += cardGap
		}
		row = append(row, c)
		used += w
	}
	flush()
	return strings.Join(rows, "\n")
}

// card is a bordered box of the given outer width.
func card(body string, width int, border string) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)
	return style.Width(max(width-style.GetHorizontalBorderSize(), 1)).Render(body)
}

// wrapped wraps s to width and styles every line.
func wrapped(s string, width int, style lipgloss.Style) string {
	lines := components.Wrap(s, max(width, 1))
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}

// labelled renders "label value" with the label in the accent color.
func labelled(p theme.Palette, label, value string) string {
	return p.Highlight().Render(label) + " " + p.Text().Render(value)
}
