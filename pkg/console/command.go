// Package console is the pseudo-terminal command interpreter. Input lines
// parse into a closed set of command variants, and each variant computes
// its own Result from the static response table without touching any
// state. Callers apply the returned effects.
package console

import (
	"fmt"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/theme"
)

// Command is one parsed console command. The set of variants is closed.
type Command interface {
	// Name is the dispatch token ("help", "theme", ...). UnknownCommand
	// reports "unknown".
	Name() string

	run(t *table, current theme.Name) Result
}

// TextCommand is a command whose whole behavior is its canned text.
type TextCommand struct {
	Token string
}

// MatrixCommand toggles rain mode.
type MatrixCommand struct{}

// HackCommand triggers a particle burst.
type HackCommand struct{}

// ClearCommand empties the visible output.
type ClearCommand struct{}

// ThemeCommand lists themes, or switches to Arg when HasArg is set.
type ThemeCommand struct {
	Arg    string
	HasArg bool
}

// UnknownCommand is any token outside the dispatch table.
type UnknownCommand struct {
	Token string
}

func (c TextCommand) Name() string  { return c.Token }
func (MatrixCommand) Name() string  { return "matrix" }
func (HackCommand) Name() string    { return "hack" }
func (ClearCommand) Name() string   { return "clear" }
func (ThemeCommand) Name() string   { return "theme" }
func (UnknownCommand) Name() string { return "unknown" }

func (c TextCommand) run(t *table, _ theme.Name) Result {
	text, _ := t.responses.Text(c.Token)
	return Result{Command: c, Output: text}
}

func (c MatrixCommand) run(t *table, _ theme.Name) Result {
	text, _ := t.responses.Text("matrix")
	return Result{Command: c, Output: text, Effects: []Effect{ToggleRain{}}}
}

func (c HackCommand) run(t *table, _ theme.Name) Result {
	text, _ := t.responses.Text("hack")
	return Result{Command: c, Output: text, Effects: []Effect{TriggerBurst{}}}
}

func (c ClearCommand) run(*table, theme.Name) Result {
	return Result{Command: c, Output: "", Effects: []Effect{ClearOutput{}}}
}

func (c ThemeCommand) run(t *table, _ theme.Name) Result {
	if !c.HasArg {
		text, _ := t.responses.Text("theme")
		return Result{Command: c, Output: text}
	}
	n := theme.Name(c.Arg)
	if !t.hasTheme(n) {
		return Result{Command: c, Output: fmt.Sprintf(t.responses.ThemeInvalid, t.themeList())}
	}
	return Result{
		Command: c,
		Output:  fmt.Sprintf(t.responses.ThemeSwitched, n),
		Effects: []Effect{ChangeTheme{Theme: n}},
	}
}

func (c UnknownCommand) run(t *table, _ theme.Name) Result {
	return Result{Command: c, Output: t.responses.Unknown}
}
