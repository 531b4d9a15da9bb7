package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/app"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/state"
)

// Zone IDs for the log buttons.
const (
	ZoneRunDiagnostic = "logs:run"
	ZoneClearLogs     = "logs:clear"
)

// LogsWidget is the diagnostics log with its two buttons. With focus, r
// runs a diagnostic and x clears the log.
type LogsWidget struct {
	store *state.Store
}

// NewLogsWidget creates the diagnostics log panel.
func NewLogsWidget(store *state.Store) *LogsWidget {
	return &LogsWidget{store: store}
}

// ID implements app.Widget.
func (w *LogsWidget) ID() string { return IDLogs }

// Title implements app.Widget.
func (w *LogsWidget) Title() string { return w.store.Content().Sections.Logs }

// Update ignores messages; the log changes only through clicks and keys.
func (w *LogsWidget) Update(tea.Msg) tea.Cmd { return nil }

// HandleKey runs a diagnostic on r and clears the log on x.
func (w *LogsWidget) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "r":
		return w.Click(ZoneRunDiagnostic)
	case "x":
		return w.Click(ZoneClearLogs)
	}
	return nil
}

// Zones implements app.Clickable.
func (w *LogsWidget) Zones() []string {
	return []string{ZoneRunDiagnostic, ZoneClearLogs}
}

// Click implements app.Clickable.
func (w *LogsWidget) Click(id string) tea.Cmd {
	switch id {
	case ZoneRunDiagnostic:
		w.store.Log().RunDiagnostic()
	case ZoneClearLogs:
		w.store.Log().Clear()
	}
	return nil
}

// View renders the action buttons above the log entries.
func (w *LogsWidget) View(ctx app.ViewContext) string {
	p := ctx.Palette
	buttons := ctx.Mark(ZoneRunDiagnostic, p.Button().Render("./run-diagnostics.sh")) + " " +
		ctx.Mark(ZoneClearLogs, p.Button().Render("rm -rf logs/*"))
	if ctx.Focused {
		buttons += " " + p.Muted().Render("[r] run  [x] clear")
	}

	lines := []string{buttons}
	entries := w.store.Log().Lines()
	if len(entries) == 0 {
		lines = append(lines, wrapped(w.store.Content().LogEmpty, ctx.Width, p.Muted().Italic(true)))
	}
	for _, e := range entries {
		lines = append(lines, wrapped(e, ctx.Width, p.Text()))
	}
	return strings.Join(lines, "\n")
}
