package console

import (
	"strings"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/content"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/theme"
)

// fallback is the command an empty line runs.
const fallback = "help"

// table is the static configuration every handler reads.
type table struct {
	responses content.Responses
	themes    []theme.Name
}

func (t *table) hasTheme(n theme.Name) bool {
	for _, k := range t.themes {
		if k == n {
			return true
		}
	}
	return false
}

func (t *table) themeList() string {
	parts := make([]string, len(t.themes))
	for i, n := range t.themes {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}

// Interpreter executes console lines against a fixed response table.
// It holds no mutable state, so one value can be shared freely.
type Interpreter struct {
	t *table
}

// New creates an interpreter over the given responses and selectable
// themes.
func New(responses content.Responses, themes []theme.Name) *Interpreter {
	return &Interpreter{t: &table{
		responses: responses,
		themes:    append([]theme.Name(nil), themes...),
	}}
}

// Default creates an interpreter over the embedded responses and every
// built-in theme.
func Default() *Interpreter {
	return New(content.ConsoleResponses(), theme.Names())
}

// Normalize trims and lowercases a line. An empty line becomes "help".
func Normalize(raw string) string {
	n := strings.ToLower(strings.TrimSpace(raw))
	if n == "" {
		return fallback
	}
	return n
}

// Parse resolves a raw line to its command variant.
func (in *Interpreter) Parse(raw string) Command {
	fields := strings.Fields(Normalize(raw))
	token, args := fields[0], fields[1:]

	switch token {
	case "matrix":
		return MatrixCommand{}
	case "hack":
		return HackCommand{}
	case "clear":
		return ClearCommand{}
	case "theme":
		if len(args) == 0 {
			return ThemeCommand{}
		}
		return ThemeCommand{Arg: args[0], HasArg: true}
	}
	if _, ok := in.t.responses.Text(token); ok {
		return TextCommand{Token: token}
	}
	return UnknownCommand{Token: token}
}

// Execute runs one line. The result depends only on raw and current.
func (in *Interpreter) Execute(raw string, current theme.Name) Result {
	r := in.Parse(raw).run(in.t, current)
	r.Input = Normalize(raw)
	return r
}

// Commands returns the dispatchable command names in table order.
func (in *Interpreter) Commands() []string {
	return in.t.responses.Names()
}

// Themes returns the selectable theme names.
func (in *Interpreter) Themes() []theme.Name {
	return append([]theme.Name(nil), in.t.themes...)
}
