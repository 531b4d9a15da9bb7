package console

import (
	"gitlab.com/tinyland/lab/ttyfolio/pkg/theme"
)

// Effect is a state change a command asks its caller to perform.
type Effect interface {
	effect()
}

// ToggleRain flips rain mode.
type ToggleRain struct{}

// TriggerBurst starts a particle burst.
type TriggerBurst struct{}

// ClearOutput empties the visible console output. History is untouched.
type ClearOutput struct{}

// ChangeTheme switches the active theme.
type ChangeTheme struct {
	Theme theme.Name
}

func (ToggleRain) effect()   {}
func (TriggerBurst) effect() {}
func (ClearOutput) effect()  {}
func (ChangeTheme) effect()  {}

// Result is the outcome of executing one line.
type Result struct {
	Command Command
	// Input is the normalized line, shown as the last command.
	Input   string
	Output  string
	Effects []Effect
}

// TogglesRain reports whether the result carries ToggleRain.
func (r Result) TogglesRain() bool {
	for _, e := range r.Effects {
		if _, ok := e.(ToggleRain); ok {
			return true
		}
	}
	return false
}

// Bursts reports whether the result carries TriggerBurst.
func (r Result) Bursts() bool {
	for _, e := range r.Effects {
		if _, ok := e.(TriggerBurst); ok {
			return true
		}
	}
	return false
}

// Clears reports whether the result carries ClearOutput.
func (r Result) Clears() bool {
	for _, e := range r.Effects {
		if _, ok := e.(ClearOutput); ok {
			return true
		}
	}
	return false
}

// NewTheme returns the requested theme when the result carries ChangeTheme.
func (r Result) NewTheme() (theme.Name, bool) {
	for _, e := range r.Effects {
		if c, ok := e.(ChangeTheme); ok {
			return c.Theme, true
		}
	}
	return "", false
}
