package app

import (
	"log/slog"
	"math/rand"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/console"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/particle"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/rain"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/raster"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/sched"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/state"
)

// Zone IDs the model marks itself.
const (
	zoneLocale = "app:locale"
	zoneExpand = "app:expand"
	zonePanel  = "panel:"
)

// AppModel is the root bubbletea model.
type AppModel struct {
	cfg    Config
	store  *state.Store
	sched  *sched.Scheduler
	logger *slog.Logger
	rng    *rand.Rand

	screen *raster.Viewport
	burst  *raster.Surface
	engine *particle.Engine
	rain   *rain.Renderer
	status *sched.Handle

	widgets        map[string]Widget
	widgetOrder    []string
	focusedWidget  string
	expandedWidget string

	page  viewport.Model
	help  help.Model
	keys  KeyMap
	zones *zone.Manager

	// Rendered in refresh, composed in View.
	header       string
	consoleBlock string
	footer       string

	pending  []tea.Cmd
	width    int
	height   int
	showHelp bool
	quitting bool
	bursts   int
}

// NewAppModel wires the store, scheduler and effect surfaces together and
// registers the widgets in page order. A widget with ID ConsoleID is
// pinned below the page and starts focused.
func NewAppModel(cfg Config, store *state.Store, s *sched.Scheduler, widgets ...Widget) AppModel {
	cfg.fill()

	screen := raster.NewViewport(80, 24, cfg.CellWidth, cfg.CellHeight)
	burst := screen.NewSurface()
	screen.Subscribe(burst.Resize)

	m := AppModel{
		cfg:     cfg,
		store:   store,
		sched:   s,
		logger:  cfg.Logger,
		rng:     cfg.Rand,
		screen:  screen,
		burst:   burst,
		engine:  particle.NewEngine(s, burst, cfg.Logger),
		rain:    rain.New(s, screen, cfg.Rand, rain.WithInterval(cfg.RainInterval), rain.WithLogger(cfg.Logger)),
		widgets: make(map[string]Widget, len(widgets)),
		page:    viewport.New(80, 20),
		help:    help.New(),
		keys:    DefaultKeyMap(),
	}
	if cfg.Mouse {
		m.zones = zone.New()
	}

	for _, w := range widgets {
		if _, dup := m.widgets[w.ID()]; dup {
			continue
		}
		m.widgets[w.ID()] = w
		if w.ID() != ConsoleID {
			m.widgetOrder = append(m.widgetOrder, w.ID())
		}
	}
	if _, ok := m.widgets[ConsoleID]; ok {
		m.widgetOrder = append(m.widgetOrder, ConsoleID)
		m.focusedWidget = ConsoleID
	} else if len(m.widgetOrder) > 0 {
		m.focusedWidget = m.widgetOrder[0]
	}

	m.status = store.Board().Start(s, cfg.StatusInterval)
	m.syncRain()
	return m
}

// Init starts the frame ticker and any widget startup work.
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{TickCmd(m.cfg.FrameInterval)}
	for _, id := range m.widgetOrder {
		if in, ok := m.widgets[id].(Initializer); ok {
			cmds = append(cmds, in.Init())
		}
	}
	return tea.Batch(cmds...)
}

// Update routes one message.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.pending = nil
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case TickEvent:
		m.sched.Advance(msg.Time)
		cmds = append(cmds, m.broadcast(msg), TickCmd(m.cfg.FrameInterval))

	case CommandEvent:
		m.applyCommand(msg.Result)

	case BurstEvent:
		m.Burst()

	case LocaleChangeEvent:
		l := m.store.ToggleLocale()
		m.logger.Debug("locale changed", "locale", l)

	case PaletteReloadEvent:
		m.reloadPalette(msg.Path)

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	default:
		cmds = append(cmds, m.broadcast(msg))
	}

	if m.quitting {
		return m, tea.Quit
	}
	m.refresh()
	cmds = append(cmds, m.pending...)
	m.pending = nil
	return m, tea.Batch(cmds...)
}

func (m *AppModel) resize(w, h int) {
	m.width, m.height = w, h
	m.screen.Resize(w, h)
	m.help.Width = w
}

// broadcast hands msg to every widget.
func (m *AppModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range m.widgetOrder {
		if cmd := m.widgets[id].Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.Quit()
		return nil
	}

	focused := m.widgets[m.focusedWidget]
	if kc, ok := focused.(KeyConsumer); ok && kc.Consumes(msg) {
		return focused.HandleKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.NextPanel):
		m.CycleFocusForward()
	case key.Matches(msg, m.keys.PrevPanel):
		m.CycleFocusBackward()
	case key.Matches(msg, m.keys.Locale):
		return Emit(LocaleChangeEvent{})
	case key.Matches(msg, m.keys.Burst):
		m.Burst()
	case key.Matches(msg, m.keys.PageUp):
		m.page.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.page.PageDown()
	case key.Matches(msg, m.keys.Back):
		if m.expandedWidget != "" {
			m.expandedWidget = ""
		} else {
			m.FocusWidget(ConsoleID)
		}
	case m.focusedWidget == ConsoleID:
		if focused != nil {
			return focused.HandleKey(msg)
		}
	case key.Matches(msg, m.keys.Quit):
		m.Quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Expand):
		m.ToggleExpand()
	case key.Matches(msg, m.keys.Console):
		m.FocusWidget(ConsoleID)
	case key.Matches(msg, m.keys.ScrollUp):
		m.page.ScrollUp(1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.page.ScrollDown(1)
	case key.Matches(msg, m.keys.Top):
		m.page.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.page.GotoBottom()
	default:
		if focused != nil {
			return focused.HandleKey(msg)
		}
	}
	return nil
}

func (m *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.page.ScrollUp(3)
		return nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.page.ScrollDown(3)
		return nil
	case msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft:
		return nil
	case m.zones == nil:
		return nil
	}

	for _, id := range m.widgetOrder {
		c, ok := m.widgets[id].(Clickable)
		if !ok {
			continue
		}
		for _, zid := range c.Zones() {
			if m.inZone(zid, msg) {
				m.setFocus(id)
				return c.Click(zid)
			}
		}
	}
	switch {
	case m.inZone(zoneLocale, msg):
		return Emit(LocaleChangeEvent{})
	case m.inZone(zoneExpand, msg):
		m.ToggleExpand()
		return nil
	}
	for _, id := range m.widgetOrder {
		if m.inZone(zonePanel+id, msg) {
			m.setFocus(id)
			return nil
		}
	}
	return nil
}

func (m *AppModel) inZone(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

// Quit tears down every scheduled task and marks the model done. It is
// safe to call more than once.
func (m *AppModel) Quit() {
	if m.quitting {
		return
	}
	m.quitting = true
	m.engine.Stop()
	m.rain.Stop()
	m.status.Cancel()
	m.sched.CancelAll()
	if m.zones != nil {
		m.zones.Close()
	}
	m.logger.Debug("teardown complete", "bursts", m.bursts)
}

// applyCommand runs the effects the store leaves to the render layer.
func (m *AppModel) applyCommand(r console.Result) {
	if r.Bursts() {
		m.Burst()
	}
	m.syncRain()
}

// Burst fires a particle burst at the screen center, replacing any burst
// in flight.
func (m *AppModel) Burst() {
	cx, cy := m.screen.Center()
	surface := m.burst
	m.bursts++
	m.logger.Debug("burst start", "x", cx, "y", cy)
	logger := m.logger
	m.engine.Run(particle.NewBurst(m.rng, cx, cy), func() {
		surface.Clear()
		logger.Debug("burst finished")
	})
}

// syncRain starts or stops the renderer to match the store's flag.
func (m *AppModel) syncRain() {
	switch on := m.store.Rain(); {
	case on && !m.rain.Running():
		m.rain.Start()
	case !on && m.rain.Running():
		m.rain.Stop()
	}
}

func (m *AppModel) reloadPalette(path string) {
	n, err := m.store.Catalog().LoadFile(path)
	if err != nil {
		m.logger.Warn("palette reload failed", "path", path, "error", err)
		return
	}
	m.logger.Info("palette reloaded", "path", path, "palettes", n)
}

// Accessors.

// Width returns the terminal width in cells.
func (m AppModel) Width() int { return m.width }

// Height returns the terminal height in cells.
func (m AppModel) Height() int { return m.height }

// FocusedWidgetID returns the ID of the focused widget.
func (m AppModel) FocusedWidgetID() string { return m.focusedWidget }

// ExpandedWidgetID returns the ID of the expanded widget, or "".
func (m AppModel) ExpandedWidgetID() string { return m.expandedWidget }

// Quitting reports whether teardown has run.
func (m AppModel) Quitting() bool { return m.quitting }

// HelpVisible reports whether the full key help is shown.
func (m AppModel) HelpVisible() bool { return m.showHelp }

// Store returns the state the model renders.
func (m AppModel) Store() *state.Store { return m.store }

// Scheduler returns the scheduler advanced on each tick.
func (m AppModel) Scheduler() *sched.Scheduler { return m.sched }

// Engine returns the burst particle engine.
func (m AppModel) Engine() *particle.Engine { return m.engine }

// Rain returns the matrix rain renderer.
func (m AppModel) Rain() *rain.Renderer { return m.rain }

// BurstSurface returns the surface bursts are drawn on.
func (m AppModel) BurstSurface() *raster.Surface { return m.burst }

// Bursts returns how many bursts have been fired.
func (m AppModel) Bursts() int { return m.bursts }

// PageOffset returns the page viewport's scroll offset.
func (m AppModel) PageOffset() int { return m.page.YOffset }
