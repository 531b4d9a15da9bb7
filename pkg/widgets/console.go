package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/app"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/console"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/state"
)

// ConsoleWidget is the interactive shell pinned below the page.
type ConsoleWidget struct {
	store   *state.Store
	input   textinput.Model
	focused bool
	hint    string
}

// NewConsoleWidget creates the console with its input focused.
func NewConsoleWidget(store *state.Store) *ConsoleWidget {
	in := textinput.New()
	in.Prompt = ""
	cmds := store.Interpreter().Commands()
	in.Placeholder = "type command (" + strings.Join(cmds[:min(4, len(cmds))], ", ") + "...)"
	in.Focus()
	return &ConsoleWidget{store: store, input: in, focused: true}
}

// ID implements app.Widget.
func (w *ConsoleWidget) ID() string { return app.ConsoleID }

// Title implements app.Widget.
func (w *ConsoleWidget) Title() string { return w.store.Content().Sections.Console }

// Value returns the text currently typed.
func (w *ConsoleWidget) Value() string { return w.input.Value() }

// SetValue replaces the typed text and moves the cursor to its end.
func (w *ConsoleWidget) SetValue(s string) {
	w.input.SetValue(s)
	w.input.CursorEnd()
}

// Hint returns the last completion hint, if any.
func (w *ConsoleWidget) Hint() string { return w.hint }

// Init starts the cursor blink.
func (w *ConsoleWidget) Init() tea.Cmd { return textinput.Blink }

// Focus implements app.Focusable.
func (w *ConsoleWidget) Focus() tea.Cmd {
	w.focused = true
	return w.input.Focus()
}

// Blur implements app.Focusable.
func (w *ConsoleWidget) Blur() {
	w.focused = false
	w.input.Blur()
}

// Consumes claims tab for completion while something is typed, and the
// line editing chords that would otherwise page the viewport.
func (w *ConsoleWidget) Consumes(msg tea.KeyMsg) bool {
	if w.input.Value() == "" {
		return false
	}
	switch msg.Type {
	case tea.KeyTab, tea.KeyCtrlU, tea.KeyCtrlD, tea.KeyCtrlW, tea.KeyCtrlK:
		return true
	}
	return false
}

// Update forwards non-key messages, such as the cursor blink, to the input.
func (w *ConsoleWidget) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		return nil
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return cmd
}

// HandleKey submits on enter, recalls history on up and down, and
// completes on tab. Other keys edit the input.
func (w *ConsoleWidget) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		return w.submit()
	case tea.KeyUp:
		if s, ok := w.store.RecallPrevious(); ok {
			w.SetValue(s)
		}
		return nil
	case tea.KeyDown:
		if s, ok := w.store.RecallNext(); ok {
			w.SetValue(s)
		}
		return nil
	case tea.KeyTab:
		w.complete()
		return nil
	}
	w.hint = ""
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return cmd
}

func (w *ConsoleWidget) submit() tea.Cmd {
	line := w.input.Value()
	w.input.Reset()
	w.hint = ""
	r := w.store.Submit(line)
	return app.Emit(app.CommandEvent{Result: r})
}

// complete extends the input with the completion candidates. A single
// candidate is taken whole; several are narrowed to their common prefix
// and listed as a hint.
func (w *ConsoleWidget) complete() {
	cands := w.store.Interpreter().Complete(w.input.Value())
	switch len(cands) {
	case 0:
		w.hint = ""
	case 1:
		v := cands[0]
		if v == "theme" {
			v += " "
		}
		w.SetValue(v)
		w.hint = ""
	default:
		if p := console.CommonPrefix(cands); len(p) > len(w.input.Value()) {
			w.SetValue(p)
		}
		w.hint = strings.Join(cands, "  ")
	}
}

// View renders the prompt, hint, last command and output above the usage line.
func (w *ConsoleWidget) View(ctx app.ViewContext) string {
	p := ctx.Palette
	w.input.Width = max(ctx.Width-3, 1)
	w.input.TextStyle = p.Text()
	w.input.PlaceholderStyle = p.Muted()
	w.input.Cursor.Style = p.Highlight()

	lines := []string{p.Highlight().Render("$ ") + w.input.View()}
	if w.hint != "" {
		lines = append(lines, wrapped(w.hint, ctx.Width, p.Muted()))
	}
	lines = append(lines, p.Muted().Render("last command: ")+p.Text().Render(w.store.LastCommand()))
	if out := w.store.Output(); out != "" {
		lines = append(lines, wrapped(out, ctx.Width, p.Text()))
	}
	cmds := w.store.Interpreter().Commands()
	lines = append(lines, wrapped("try: "+strings.Join(cmds[:min(6, len(cmds))], ", ")+"... | ↑↓ for history", ctx.Width, p.Muted()))
	return strings.Join(lines, "\n")
}
