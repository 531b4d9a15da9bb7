package state

import (
	"math/rand"
	"slices"
	"testing"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/content"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/theme"
)

func newStore() *Store {
	return New(Options{Rand: rand.New(rand.NewSource(1))})
}

const helpText = "available commands: help, stack, uptime, goals, motto, socials, matrix, hack, clear, theme, sudo"

func assertHistory(t *testing.T, s *Store, want ...string) {
	t.Helper()
	if got := s.History().Entries(); !slices.Equal(got, want) {
		t.Errorf("history = %q, want %q", got, want)
	}
}

func TestInitialState(t *testing.T) {
	s := newStore()
	if got := s.Theme(); got != theme.Nord {
		t.Errorf("Theme() = %s, want %s", got, theme.Nord)
	}
	assertHistory(t, s, "help")
	if got := s.Output(); got != helpText {
		t.Errorf("Output() = %q, want help text", got)
	}
	if got := s.LastCommand(); got != "help" {
		t.Errorf("LastCommand() = %q, want help", got)
	}
	if s.Rain() {
		t.Error("Rain() = true initially")
	}
	if got := s.Locale(); got != content.English {
		t.Errorf("Locale() = %s, want %s", got, content.English)
	}
	if got := len(s.Log().Entries()); got != 3 {
		t.Errorf("%d log entries, want 3", got)
	}
	if got := len(s.Board().Tiles()); got != 4 {
		t.Errorf("%d tiles, want 4", got)
	}
}

func TestMatrixTogglesRainWithoutThemeChange(t *testing.T) {
	s := newStore()
	s.Submit("theme dracula")

	s.Submit("matrix")
	if !s.Rain() {
		t.Error("Rain() = false after matrix")
	}
	if got := s.Theme(); got != theme.Dracula {
		t.Errorf("Theme() = %s, want %s", got, theme.Dracula)
	}

	s.Submit("matrix")
	if s.Rain() {
		t.Error("Rain() = true after second matrix")
	}
	if got := s.Theme(); got != theme.Dracula {
		t.Errorf("Theme() = %s, want %s", got, theme.Dracula)
	}
}

func TestThemeScenario(t *testing.T) {
	s := newStore()
	s.Submit("theme gruvbox")
	if got := s.Theme(); got != theme.Gruvbox {
		t.Errorf("Theme() = %s, want %s", got, theme.Gruvbox)
	}
	if got := s.Output(); got != "theme switched to gruvbox" {
		t.Errorf("Output() = %q", got)
	}

	s.Submit("theme neon")
	if got := s.Theme(); got != theme.Gruvbox {
		t.Errorf("Theme() = %s after invalid switch, want %s", got, theme.Gruvbox)
	}
	if got, want := s.Output(), "invalid theme. available: nord, gruvbox, dracula, matrix"; got != want {
		t.Errorf("Output() = %q, want %q", got, want)
	}
	if got := s.LastCommand(); got != "theme neon" {
		t.Errorf("LastCommand() = %q, want %q", got, "theme neon")
	}
}

func TestBlankLineRunsHelpWithoutHistory(t *testing.T) {
	s := newStore()
	s.Submit("stack")
	s.Submit("   ")
	if got := s.Output(); got != helpText {
		t.Errorf("Output() = %q, want help text", got)
	}
	if got := s.LastCommand(); got != "help" {
		t.Errorf("LastCommand() = %q, want help", got)
	}
	assertHistory(t, s, "help", "stack")
}

func TestClearEmptiesOutputKeepsHistory(t *testing.T) {
	s := newStore()
	s.Submit("motto")
	r := s.Submit("clear")
	if !r.Clears() {
		t.Error("clear result does not clear")
	}
	if got := s.Output(); got != "" {
		t.Errorf("Output() = %q, want empty", got)
	}
	if got := s.LastCommand(); got != "clear" {
		t.Errorf("LastCommand() = %q, want clear", got)
	}
	assertHistory(t, s, "help", "motto", "clear")
}

func TestHackReturnsBurstForCaller(t *testing.T) {
	s := newStore()
	r := s.Submit("hack")
	if !r.Bursts() {
		t.Error("hack result does not burst")
	}
	if s.Rain() {
		t.Error("hack turned rain on")
	}
}

func TestRecallThroughStore(t *testing.T) {
	s := newStore()
	s.Submit("a")
	s.Submit("b")

	for i, want := range []string{"b", "a", "help", "help"} {
		got, ok := s.RecallPrevious()
		if !ok || got != want {
			t.Errorf("RecallPrevious #%d = (%q, %v), want (%q, true)", i+1, got, ok, want)
		}
	}
	for i, want := range []string{"a", "b", ""} {
		got, ok := s.RecallNext()
		if !ok || got != want {
			t.Errorf("RecallNext #%d = (%q, %v), want (%q, true)", i+1, got, ok, want)
		}
	}
	if _, ok := s.RecallNext(); ok {
		t.Error("RecallNext succeeded with the cursor unset")
	}
}

func TestSubmitResetsRecall(t *testing.T) {
	s := newStore()
	s.Submit("stack")
	s.RecallPrevious()
	s.RecallPrevious()
	s.Submit("uptime")
	if got, _ := s.RecallPrevious(); got != "uptime" {
		t.Errorf("RecallPrevious() = %q, want uptime", got)
	}
}

func TestToggleLocale(t *testing.T) {
	s := newStore()
	if got := s.ToggleLocale(); got != content.Japanese {
		t.Errorf("ToggleLocale() = %s, want %s", got, content.Japanese)
	}
	if got := s.Content().Hero.Title; got != "田中 達樹 (Tatsuki)" {
		t.Errorf("title = %q", got)
	}
	if got := s.ToggleLocale(); got != content.English {
		t.Errorf("ToggleLocale() = %s, want %s", got, content.English)
	}
	if got := s.Content().Hero.Title; got != "Tatsuki Tanaka" {
		t.Errorf("title = %q", got)
	}
	if got := s.SetLocale("fr"); got != content.English {
		t.Errorf("SetLocale(fr) = %s, want %s", got, content.English)
	}
}

func TestOptionsHonored(t *testing.T) {
	s := New(Options{Theme: theme.Matrix, Locale: content.Japanese, Rand: rand.New(rand.NewSource(2))})
	if got := s.Theme(); got != theme.Matrix {
		t.Errorf("Theme() = %s, want %s", got, theme.Matrix)
	}
	if got := s.Locale(); got != content.Japanese {
		t.Errorf("Locale() = %s, want %s", got, content.Japanese)
	}
	if got := s.Palette().Background; got != "#000000" {
		t.Errorf("background = %s, want #000000", got)
	}
}

func TestInvalidOptionsFallBack(t *testing.T) {
	s := New(Options{Theme: "neon", Locale: "xx"})
	if got := s.Theme(); got != theme.Nord {
		t.Errorf("Theme() = %s, want %s", got, theme.Nord)
	}
	if got := s.Locale(); got != content.English {
		t.Errorf("Locale() = %s, want %s", got, content.English)
	}
}

func TestSetTheme(t *testing.T) {
	s := newStore()
	if !s.SetTheme(theme.Dracula) {
		t.Error("SetTheme(dracula) = false")
	}
	if s.SetTheme("neon") {
		t.Error("SetTheme(neon) = true")
	}
	if got := s.Theme(); got != theme.Dracula {
		t.Errorf("Theme() = %s, want %s", got, theme.Dracula)
	}
}
