package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/theme"
)

// View composes header, page, console and footer, then lays the effect
// surfaces over the result: rain behind, burst on top.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "initializing..."
	}

	parts := []string{m.header, m.page.View()}
	if m.consoleBlock != "" {
		parts = append(parts, m.consoleBlock)
	}
	if m.footer != "" {
		parts = append(parts, m.footer)
	}
	view := strings.Join(parts, "\n")
	if m.zones != nil {
		view = m.zones.Scan(view)
	}
	if m.rain.Running() {
		view = m.rain.Surface().Underlay(view, m.cfg.Profile)
	}
	if m.burst.Filled() > 0 {
		view = m.burst.Overlay(view, m.cfg.Profile)
	}
	return view
}

// Snapshot renders the whole page unclipped, with no effects or zones.
// Print mode writes it to stdout.
func (m AppModel) Snapshot() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	parts := []string{m.renderHeader(width, false)}
	for _, id := range m.widgetOrder {
		parts = append(parts, m.renderPanel(m.widgets[id], width, false))
	}
	return strings.Join(parts, "\n")
}

// refresh re-renders the page after every update and sizes the page
// viewport to whatever the header, console and footer leave.
func (m *AppModel) refresh() {
	if m.width == 0 || m.height == 0 {
		return
	}
	p := m.store.Palette()

	m.header = m.renderHeader(m.width, true)
	m.consoleBlock = ""
	if c, ok := m.widgets[ConsoleID]; ok && m.expandedWidget == "" {
		m.consoleBlock = m.renderPanel(c, m.width, true)
	}
	m.help.Styles = helpStyles(p)
	m.footer = m.help.View(m.keys)

	used := lipgloss.Height(m.header) + lipgloss.Height(m.footer)
	if m.consoleBlock != "" {
		used += lipgloss.Height(m.consoleBlock)
	}
	m.page.Width = m.width
	m.page.Height = max(m.height-used, 1)

	var panels []string
	if w, ok := m.widgets[m.expandedWidget]; ok {
		panels = append(panels, m.renderPanel(w, m.width, true))
	} else {
		for _, id := range m.widgetOrder {
			if id == ConsoleID {
				continue
			}
			panels = append(panels, m.renderPanel(m.widgets[id], m.width, true))
		}
	}
	m.page.SetContent(strings.Join(panels, "\n"))
}

// renderPanel draws a widget inside its bordered box with the section
// heading on top.
func (m AppModel) renderPanel(w Widget, width int, marked bool) string {
	p := m.store.Palette()
	focused := w.ID() == m.focusedWidget
	style := p.Panel(focused)
	inner := max(width-style.GetHorizontalFrameSize(), 1)

	ctx := ViewContext{
		Width:    inner,
		Palette:  p,
		Focused:  focused,
		Expanded: w.ID() == m.expandedWidget,
	}
	if marked {
		ctx.zones = m.zones
	}

	body := p.Heading().Render(w.Title())
	if v := w.View(ctx); v != "" {
		body += "\n" + v
	}
	box := style.Width(max(width-style.GetHorizontalBorderSize(), 1)).Render(body)
	return ctx.Mark(zonePanel+w.ID(), box)
}

// renderHeader draws the title bar: window lights and the prompt on the
// left, theme, fullscreen toggle and locale switch on the right.
func (m AppModel) renderHeader(width int, marked bool) string {
	p := m.store.Palette()
	c := m.store.Content()

	lights := theme.Fg(p.Error).Render("●") + " " +
		theme.Fg(p.Warn).Render("●") + " " +
		theme.Fg(p.OK).Render("●")
	left := lights + "  " + p.Highlight().Render(c.Hero.Prompt) + " " + p.Text().Render(c.Sections.Header)

	expand := "□"
	if m.expandedWidget != "" {
		expand = "⊡"
	}
	mark := ViewContext{}.Mark
	if marked {
		mark = ViewContext{zones: m.zones}.Mark
	}
	right := p.Muted().Render(string(m.store.Theme())) + " " +
		mark(zoneExpand, p.Button().Render(expand)) + " " +
		mark(zoneLocale, p.Button().Render(m.store.Locale().Next().Label()))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return right
	}
	return left + strings.Repeat(" ", gap) + right
}

func helpStyles(p theme.Palette) help.Styles {
	s := help.New().Styles
	s.ShortKey = theme.Fg(p.HelpKey)
	s.ShortDesc = theme.Fg(p.HelpDesc)
	s.ShortSeparator = theme.Fg(p.Dim)
	s.FullKey = theme.Fg(p.HelpKey)
	s.FullDesc = theme.Fg(p.HelpDesc)
	s.FullSeparator = theme.Fg(p.Dim)
	s.Ellipsis = theme.Fg(p.Dim)
	return s
}
