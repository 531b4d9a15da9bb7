package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tone names a semantic status color.
type Tone string

const (
	ToneOK   Tone = "ok"
	ToneWarn Tone = "warn"
	ToneInfo Tone = "info"
)

// ToneColor returns the palette color for a tone. Unknown tones use Dim.
func (p Palette) ToneColor(t Tone) string {
	switch Tone(strings.ToLower(string(t))) {
	case ToneOK:
		return p.OK
	case ToneWarn:
		return p.Warn
	case ToneInfo:
		return p.Info
	}
	return p.Dim
}

// Fg returns a style with the given foreground hex color.
func Fg(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// Text is the plain body style.
func (p Palette) Text() lipgloss.Style { return Fg(p.Foreground) }

// Muted is the style for secondary text.
func (p Palette) Muted() lipgloss.Style { return Fg(p.Dim) }

// Highlight is the accent style.
func (p Palette) Highlight() lipgloss.Style { return Fg(p.Accent).Bold(true) }

// Heading is the style for panel section labels.
func (p Palette) Heading() lipgloss.Style { return Fg(p.Title).Bold(true) }

// Panel returns the bordered box style for a page panel.
func (p Palette) Panel(focused bool) lipgloss.Style {
	border := p.Border
	if focused {
		border = p.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)
}

// Button is the style for a clickable action label.
func (p Palette) Button() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Background)).
		Background(lipgloss.Color(p.Accent)).
		Padding(0, 1)
}

// Tag is the style for small inline chips such as skill names.
func (p Palette) Tag() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Accent)).
		Border(lipgloss.NormalBorder(), false, true).
		BorderForeground(lipgloss.Color(p.Border))
}
