package terminal

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities summarizes the terminal for the current session.
type Capabilities struct {
	Term    Terminal
	Size    Size
	Profile termenv.Profile
	// Interactive is true when stdin and stdout are both terminals.
	Interactive bool
	Mouse       bool
	SSH         bool
	Mux         bool
}

// TrueColor reports whether the profile carries 24-bit color.
func (c *Capabilities) TrueColor() bool {
	return c.Profile == termenv.TrueColor
}

var (
	mu     sync.Mutex
	cached *Capabilities
)

// DetectCapabilities detects once and returns the cached result on later
// calls.
func DetectCapabilities() *Capabilities {
	mu.Lock()
	defer mu.Unlock()
	if cached == nil {
		cached = detect()
	}
	return cached
}

// ForceRefresh re-detects and replaces the cached value.
func ForceRefresh() *Capabilities {
	mu.Lock()
	defer mu.Unlock()
	cached = detect()
	return cached
}

func detect() *Capabilities {
	term := Detect()
	interactive := isatty.IsTerminal(os.Stdout.Fd()) && isatty.IsTerminal(os.Stdin.Fd())

	profile := termenv.NewOutput(os.Stdout).EnvColorProfile()
	if profile != termenv.Ascii && profile != termenv.TrueColor && term.SupportsTrueColor() {
		profile = termenv.TrueColor
	}
	if ct := os.Getenv("COLORTERM"); profile != termenv.Ascii && (ct == "truecolor" || ct == "24bit") {
		profile = termenv.TrueColor
	}

	return &Capabilities{
		Term:        term,
		Size:        GetSize(),
		Profile:     profile,
		Interactive: interactive,
		Mouse:       term.SupportsMouse(),
		SSH:         os.Getenv("SSH_TTY") != "" || os.Getenv("SSH_CONNECTION") != "",
		Mux:         os.Getenv("TMUX") != "" || os.Getenv("STY") != "",
	}
}
