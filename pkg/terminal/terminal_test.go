package terminal

import (
	"os"
	"testing"
)

var termEnvVars = []string{
	"TERM_PROGRAM", "TERM", "COLORTERM",
	"KITTY_WINDOW_ID", "ITERM_SESSION_ID", "WEZTERM_EXECUTABLE",
	"TILIX_ID", "VTE_VERSION", "LC_TERMINAL",
	"INSIDE_EMACS", "TMUX", "STY",
	"SSH_TTY", "SSH_CONNECTION",
	"COLUMNS", "LINES",
}

func clearTermEnv(t *testing.T) {
	t.Helper()
	for _, v := range termEnvVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want Terminal
	}{
		{"ghostty program", map[string]string{"TERM_PROGRAM": "ghostty"}, TermGhostty},
		{"iterm program", map[string]string{"TERM_PROGRAM": "iTerm.app"}, TermITerm2},
		{"kitty term", map[string]string{"TERM": "xterm-kitty"}, TermKitty},
		{"alacritty term", map[string]string{"TERM": "alacritty-direct"}, TermAlacritty},
		{"wezterm marker", map[string]string{"WEZTERM_EXECUTABLE": "/usr/bin/wezterm"}, TermWezTerm},
		{"tilix before vte", map[string]string{"VTE_VERSION": "7000", "TILIX_ID": "x"}, TermTilix},
		{"gnome vte", map[string]string{"VTE_VERSION": "7000"}, TermGNOME},
		{"emacs", map[string]string{"INSIDE_EMACS": "29.1,vterm"}, TermEmacs},
		{"tmux", map[string]string{"TMUX": "/tmp/tmux-1/default,1,0"}, TermTmux},
		{"screen", map[string]string{"STY": "1.pts-0.host", "TERM": "screen"}, TermScreen},
		{"iterm over ssh", map[string]string{"LC_TERMINAL": "iTerm2"}, TermITerm2},
		{"program beats tmux", map[string]string{"TERM_PROGRAM": "kitty", "TMUX": "x"}, TermKitty},
		{"nothing", nil, TermGeneric},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearTermEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if got := Detect(); got != tc.want {
				t.Errorf("Detect() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTerminalString(t *testing.T) {
	if got := TermGNOME.String(); got != "gnome-terminal" {
		t.Errorf("TermGNOME.String() = %q", got)
	}
	if got := Terminal(99).String(); got != "unknown" {
		t.Errorf("Terminal(99).String() = %q, want unknown", got)
	}
}

func TestTerminalSupports(t *testing.T) {
	if !TermKitty.SupportsTrueColor() || TermTmux.SupportsTrueColor() {
		t.Error("true color table wrong for kitty/tmux")
	}
	if TermEmacs.SupportsMouse() || !TermGeneric.SupportsMouse() {
		t.Error("mouse table wrong for emacs/generic")
	}
}

func TestSizeCell(t *testing.T) {
	cases := []struct {
		name  string
		size  Size
		wantW int
		wantH int
	}{
		{"reported", Size{Cols: 100, Rows: 40, PixelW: 1000, PixelH: 800}, 10, 20},
		{"unreported", Size{Cols: 80, Rows: 24}, DefaultCellWidth, DefaultCellHeight},
		{"width only", Size{Cols: 80, Rows: 24, PixelW: 720}, 9, DefaultCellHeight},
		{"fewer pixels than cells", Size{Cols: 80, Rows: 24, PixelW: 40, PixelH: 10}, DefaultCellWidth, DefaultCellHeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, h := tc.size.Cell()
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("Cell() = %dx%d, want %dx%d", w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestGetSizeFromFdFallsBackToEnv(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("COLUMNS", "100")
	t.Setenv("LINES", "30")

	s := GetSizeFromFd(999)
	if s.Cols != 100 || s.Rows != 30 {
		t.Errorf("GetSizeFromFd(999) = %dx%d, want 100x30", s.Cols, s.Rows)
	}
}

func TestGetSizeIsPositive(t *testing.T) {
	clearTermEnv(t)
	s := GetSize()
	if s.Cols <= 0 || s.Rows <= 0 {
		t.Errorf("GetSize() = %dx%d, want positive", s.Cols, s.Rows)
	}
}

func TestEnvInt(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want int
	}{
		{"42", 42}, {"invalid", 10}, {"-5", 10}, {"", 10},
	} {
		t.Setenv("TEST_INT_VAR", tc.val)
		if got := envInt("TEST_INT_VAR", 10); got != tc.want {
			t.Errorf("envInt(%q) = %d, want %d", tc.val, got, tc.want)
		}
	}
}

func TestCapabilities(t *testing.T) {
	clearTermEnv(t)
	t.Setenv("TERM_PROGRAM", "kitty")
	t.Setenv("SSH_TTY", "/dev/pts/0")
	t.Setenv("TMUX", "x")

	caps := ForceRefresh()
	if caps.Term != TermKitty {
		t.Errorf("Term = %v, want kitty", caps.Term)
	}
	if !caps.SSH || !caps.Mux || !caps.Mouse {
		t.Errorf("caps = %+v, want ssh, mux and mouse", caps)
	}
	if DetectCapabilities() != caps {
		t.Error("DetectCapabilities did not return the cached value")
	}
}
