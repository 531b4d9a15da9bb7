package widgets

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/app"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/content"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/state"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/sysinfo"
)

// SysinfoSource is the DataUpdateEvent source of host facts.
const SysinfoSource = "sysinfo"

const (
	// RefreshInterval is how often live host facts are re-read.
	RefreshInterval = time.Minute
	collectTimeout  = 2 * time.Second
	logoGap         = 3
)

// Collector reads host facts.
type Collector func(ctx context.Context) (*sysinfo.Facts, error)

// NeofetchWidget shows the logo beside the stat lines. When live, the
// user, host, kernel and uptime rows come from the running machine.
type NeofetchWidget struct {
	store   *state.Store
	live    bool
	collect Collector

	facts     *sysinfo.Facts
	fetchedAt time.Time
	inflight  bool
}

// NewNeofetchWidget creates the panel. collect may be nil, in which case
// sysinfo.Collect is used.
func NewNeofetchWidget(store *state.Store, live bool, collect Collector) *NeofetchWidget {
	if collect == nil {
		collect = sysinfo.Collect
	}
	return &NeofetchWidget{store: store, live: live, collect: collect}
}

// ID implements app.Widget.
func (w *NeofetchWidget) ID() string { return IDNeofetch }

// Title implements app.Widget.
func (w *NeofetchWidget) Title() string { return w.store.Content().Sections.Neofetch }

// HandleKey ignores keys.
func (w *NeofetchWidget) HandleKey(tea.KeyMsg) tea.Cmd { return nil }

// Init starts the first fetch when live.
func (w *NeofetchWidget) Init() tea.Cmd {
	return w.fetch()
}

// Update stores fetched facts and schedules the next fetch once the
// current ones are older than RefreshInterval.
func (w *NeofetchWidget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.DataUpdateEvent:
		if msg.Source != SysinfoSource {
			return nil
		}
		w.inflight = false
		w.fetchedAt = msg.Timestamp
		if f, ok := msg.Data.(*sysinfo.Facts); ok && f != nil {
			w.facts = f
		}
	case app.TickEvent:
		if !w.fetchedAt.IsZero() && msg.Time.Sub(w.fetchedAt) >= RefreshInterval {
			return w.fetch()
		}
	}
	return nil
}

func (w *NeofetchWidget) fetch() tea.Cmd {
	if !w.live || w.inflight {
		return nil
	}
	w.inflight = true
	collect := w.collect
	return app.DataFetchCmd(SysinfoSource, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
		defer cancel()
		return collect(ctx)
	})
}

// SetFacts shows f until the next fetch replaces it.
func (w *NeofetchWidget) SetFacts(f *sysinfo.Facts) {
	w.facts = f
}

// Stats returns the rows shown, with live values applied when available.
func (w *NeofetchWidget) Stats() []content.Stat {
	stats := w.store.Content().Neofetch
	if w.facts != nil {
		return w.facts.Apply(stats)
	}
	return stats
}

// View puts the logo beside the stats, or above them when the panel is narrow.
func (w *NeofetchWidget) View(ctx app.ViewContext) string {
	p := ctx.Palette
	c := w.store.Content()

	logo := make([]string, len(c.Logo))
	for i, l := range c.Logo {
		logo[i] = p.Highlight().Render(l)
	}
	logoBlock := strings.Join(logo, "\n")

	stats := w.Stats()
	lines := make([]string, 0, len(stats))
	for _, s := range stats {
		lines = append(lines, labelled(p, s.Label+":", s.Value))
	}
	statBlock := strings.Join(lines, "\n")

	lw := lipgloss.Width(logoBlock)
	if lw == 0 {
		return statBlock
	}
	if lw+logoGap+lipgloss.Width(statBlock) > ctx.Width {
		return logoBlock + "\n\n" + statBlock
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, logoBlock, strings.Repeat(" ", logoGap), statBlock)
}
