package widgets

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/app"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/sched"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/state"
)

// TypeInterval is the delay between typed characters of the hero title.
const TypeInterval = 80 * time.Millisecond

// HeroWidget shows the name, typed out one character at a time, with the
// subtitle and contact links.
type HeroWidget struct {
	store *state.Store
	sched *sched.Scheduler

	target string
	typed  int
	typing *sched.Handle
}

// NewHeroWidget creates the hero panel and starts typing the title.
func NewHeroWidget(store *state.Store, s *sched.Scheduler) *HeroWidget {
	w := &HeroWidget{store: store, sched: s}
	w.restart()
	return w
}

// ID implements app.Widget.
func (w *HeroWidget) ID() string { return IDHero }

func (w *HeroWidget) Title() string {
	return w.store.Content().Hero.Greeting
}

// Update restarts the typewriter when the title text changes.
func (w *HeroWidget) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(app.TickEvent); ok && w.store.Content().Hero.Title != w.target {
		w.restart()
	}
	return nil
}

// HandleKey ignores keys.
func (w *HeroWidget) HandleKey(tea.KeyMsg) tea.Cmd { return nil }

// Typed returns the visible part of the title.
func (w *HeroWidget) Typed() string {
	return string([]rune(w.target)[:w.typed])
}

// Typing reports whether the title is still being typed.
func (w *HeroWidget) Typing() bool {
	return w.typing.Active()
}

func (w *HeroWidget) restart() {
	w.typing.Cancel()
	w.target = w.store.Content().Hero.Title
	w.typed = 0
	total := len([]rune(w.target))
	if total == 0 {
		return
	}
	w.typing = w.sched.Every("typewriter", TypeInterval, func(time.Time) {
		w.typed++
		if w.typed >= total {
			w.typed = total
			w.typing.Cancel()
		}
	})
}

// View renders the typed title, the subtitle and the contact lines.
func (w *HeroWidget) View(ctx app.ViewContext) string {
	p := ctx.Palette
	c := w.store.Content()

	title := p.Highlight().Render(w.Typed())
	if w.Typing() {
		title += p.Muted().Render("▌")
	}
	return strings.Join([]string{
		title,
		wrapped(c.Hero.Subtitle, ctx.Width, p.Text()),
		"",
		labelled(p, "mail", c.Contact.Email),
		labelled(p, "code", c.Contact.GitHub+" ↗"),
	}, "\n")
}
