// Package state is the single owner of the page's mutable state. The
// console interpreter stays pure; Store feeds it the current theme and
// applies the effects it returns.
package state

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/console"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/content"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/history"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/status"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/theme"
)

// Options configures a new Store. Zero values pick the defaults.
type Options struct {
	Theme   theme.Name
	Locale  content.Locale
	Catalog *theme.Catalog
	Rand    *rand.Rand
	Clock   func() time.Time
	Logger  *slog.Logger
}

// Store holds the theme register, history, tiles, log, rain flag, console
// output and locale.
type Store struct {
	interp  *console.Interpreter
	theme   *theme.Register
	history *history.Buffer
	board   *status.Board
	log     *status.Log
	logger  *slog.Logger

	locale  content.Locale
	profile content.Profile
	rain    bool
	output  string
	last    string
}

// New builds the initial state: history ["help"], the help text as
// output and "help" as the last command.
func New(opts Options) *Store {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if _, err := content.ParseLocale(string(opts.Locale)); err != nil {
		opts.Locale = content.English
	}

	profile := content.ProfileFor(opts.Locale)
	s := &Store{
		interp:  console.Default(),
		theme:   theme.NewRegister(opts.Catalog, opts.Theme),
		history: history.New("help"),
		board:   status.NewBoard(status.DefaultTiles(), opts.Rand),
		log:     status.NewLog(profile.LogSeeds, content.LogTemplates(), opts.Rand, opts.Clock),
		logger:  opts.Logger,
		locale:  opts.Locale,
		profile: profile,
	}
	initial := s.interp.Execute("help", s.theme.Current())
	s.output = initial.Output
	s.last = initial.Input
	return s
}

// Submit executes one console line. Blank lines run help and are not
// recorded; anything else is appended to history first. Theme, rain and
// clear effects are applied here. Bursts are left to the caller, which
// owns the particle engine.
func (s *Store) Submit(line string) console.Result {
	if err := s.history.Append(line); err != nil {
		s.logger.Debug("blank console line", "error", err)
	}
	r := s.interp.Execute(line, s.theme.Current())

	s.output = r.Output
	s.last = r.Input
	if n, ok := r.NewTheme(); ok {
		s.theme.Set(n)
		s.logger.Debug("theme changed", "theme", n)
	}
	if r.TogglesRain() {
		s.rain = !s.rain
		s.logger.Debug("rain toggled", "on", s.rain)
	}
	if r.Clears() {
		s.output = ""
	}
	return r
}

// RecallPrevious steps back through history. ok is false when there is
// nothing to recall.
func (s *Store) RecallPrevious() (string, bool) {
	return s.history.Previous()
}

// RecallNext steps forward through history. Past the newest entry it
// yields "" with ok true so the input gets cleared.
func (s *Store) RecallNext() (string, bool) {
	return s.history.Next()
}

// ToggleLocale switches between the content tables and returns the new
// locale.
func (s *Store) ToggleLocale() content.Locale {
	return s.SetLocale(s.locale.Next())
}

// SetLocale selects a content table. Unknown locales are ignored.
func (s *Store) SetLocale(l content.Locale) content.Locale {
	if _, err := content.ParseLocale(string(l)); err != nil {
		return s.locale
	}
	s.locale = l
	s.profile = content.ProfileFor(l)
	return l
}

// SetRain forces rain mode on or off.
func (s *Store) SetRain(on bool) {
	s.rain = on
}

// SetTheme switches the theme outside the console, e.g. from a flag.
// Invalid names are ignored and reported false.
func (s *Store) SetTheme(n theme.Name) bool {
	return s.theme.Set(n)
}

// Interpreter returns the command interpreter submissions run through.
func (s *Store) Interpreter() *console.Interpreter { return s.interp }

// Locale returns the active content locale.
func (s *Store) Locale() content.Locale { return s.locale }

// Content returns the profile text for the active locale.
func (s *Store) Content() content.Profile { return s.profile }

// Rain reports whether matrix rain is on.
func (s *Store) Rain() bool { return s.rain }

// Output returns the console text from the last submission.
func (s *Store) Output() string { return s.output }

// LastCommand returns the normalized last submission, or "" before any.
func (s *Store) LastCommand() string { return s.last }

// Theme returns the current theme name.
func (s *Store) Theme() theme.Name { return s.theme.Current() }

// Palette returns the colors of the current theme.
func (s *Store) Palette() theme.Palette { return s.theme.Palette() }

// Catalog returns the palette catalog themes resolve against.
func (s *Store) Catalog() *theme.Catalog { return s.theme.Catalog() }

// History returns the command recall buffer.
func (s *Store) History() *history.Buffer { return s.history }

// Board returns the status tile board.
func (s *Store) Board() *status.Board { return s.board }

// Log returns the diagnostics log.
func (s *Store) Log() *status.Log { return s.log }
