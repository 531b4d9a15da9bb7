// Package terminal answers the questions the page asks about the terminal
// it runs in: which emulator it is, how big a cell is in pixels and how
// many colors it can show.
//
// Detection reads environment variables only. No query sequences are
// written, so it is safe before the program takes over the screen.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermUnknown Terminal = iota
	TermGhostty
	TermKitty
	TermWezTerm
	TermITerm2
	TermAlacritty
	TermTilix
	TermGNOME
	TermTmux
	TermScreen
	TermVSCode
	TermEmacs
	TermGeneric
)

var terminalNames = [...]string{
	TermUnknown:   "unknown",
	TermGhostty:   "ghostty",
	TermKitty:     "kitty",
	TermWezTerm:   "wezterm",
	TermITerm2:    "iterm2",
	TermAlacritty: "alacritty",
	TermTilix:     "tilix",
	TermGNOME:     "gnome-terminal",
	TermTmux:      "tmux",
	TermScreen:    "screen",
	TermVSCode:    "vscode",
	TermEmacs:     "emacs",
	TermGeneric:   "generic",
}

// String returns the emulator's short name, as neofetch prints it.
func (t Terminal) String() string {
	if t >= 0 && int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// SupportsTrueColor reports whether the emulator renders 24-bit color.
func (t Terminal) SupportsTrueColor() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermTilix, TermGNOME, TermVSCode:
		return true
	}
	return false
}

// SupportsMouse reports whether the emulator speaks SGR mouse reporting,
// which the clickable panel buttons rely on.
func (t Terminal) SupportsMouse() bool {
	switch t {
	case TermUnknown, TermEmacs, TermScreen:
		return false
	}
	return true
}

// termPrograms maps lowercased TERM_PROGRAM values.
var termPrograms = map[string]Terminal{
	"ghostty":   TermGhostty,
	"kitty":     TermKitty,
	"wezterm":   TermWezTerm,
	"iterm.app": TermITerm2,
	"vscode":    TermVSCode,
	"alacritty": TermAlacritty,
	"tmux":      TermTmux,
}

// markers are emulator-specific variables whose mere presence identifies
// the emulator, checked in order.
var markers = []struct {
	env  string
	term Terminal
}{
	{"KITTY_WINDOW_ID", TermKitty},
	{"ITERM_SESSION_ID", TermITerm2},
	{"WEZTERM_EXECUTABLE", TermWezTerm},
	{"TILIX_ID", TermTilix},
	{"VTE_VERSION", TermGNOME},
	{"INSIDE_EMACS", TermEmacs},
	{"TMUX", TermTmux},
	{"STY", TermScreen},
}

// Detect identifies the terminal emulator from the environment. The
// outer emulator wins over a multiplexer when both are visible.
func Detect() Terminal {
	if t, ok := termPrograms[strings.ToLower(os.Getenv("TERM_PROGRAM"))]; ok {
		return t
	}
	switch term := os.Getenv("TERM"); {
	case term == "xterm-ghostty":
		return TermGhostty
	case term == "xterm-kitty":
		return TermKitty
	case strings.HasPrefix(term, "alacritty"):
		return TermAlacritty
	}
	for _, m := range markers {
		if os.Getenv(m.env) != "" {
			return m.term
		}
	}
	if os.Getenv("LC_TERMINAL") == "iTerm2" {
		return TermITerm2
	}
	return TermGeneric
}
