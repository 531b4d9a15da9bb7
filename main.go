// ttyfolio is a themed terminal portfolio page.
//
// It shows a scrolling page of profile panels with a small interactive
// console pinned below it. Console commands switch the color theme, toggle
// a matrix rain background and fire particle bursts.
//
// Usage:
//
//	ttyfolio [flags]
//
// Flags:
//
//	-config string     Path to configuration file (default: ~/.config/ttyfolio/config.toml)
//	-theme string      Starting theme (nord|gruvbox|dracula|matrix)
//	-locale string     Content language (en|ja)
//	-seed int          Random seed for tiles, logs and effects (0 = clock)
//	-log-level string  debug|info|warn|error
//	-print             Render the page once to stdout and exit
//	-run string        Execute one console command, print the result and exit
//	-width int         Page width for -print (0 = terminal width or 80)
//	-height int        Page height for -print (0 = terminal height or 40)
//	-palette-template  Print the built-in palettes as an override file and exit
//	-version           Print version and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/app"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/cache"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/config"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/content"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/sched"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/state"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/sysinfo"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/terminal"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/theme"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/widgets"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

const (
	defaultPrintWidth  = 80
	defaultPrintHeight = 40
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole program. It returns the process exit code so that
// deferred cleanup runs before main exits.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ttyfolio", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath      = fs.String("config", "", "Path to configuration file")
		themeName       = fs.String("theme", "", "Starting theme ("+theme.Joined()+")")
		localeName      = fs.String("locale", "", "Content language (en|ja)")
		seed            = fs.Int64("seed", 0, "Random seed for tiles, logs and effects (0 = clock)")
		logLevel        = fs.String("log-level", "", "Log level (debug|info|warn|error)")
		printPage       = fs.Bool("print", false, "Render the page once to stdout and exit")
		runLine         = fs.String("run", "", "Execute one console command, print the result and exit")
		width           = fs.Int("width", 0, "Page width for -print (0 = auto)")
		height          = fs.Int("height", 0, "Page height for -print (0 = auto)")
		paletteTemplate = fs.Bool("palette-template", false, "Print the built-in palettes as an override file and exit")
		showVersion     = fs.Bool("version", false, "Print version and exit")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "ttyfolio %s (%s) built %s\n", version, commit, date)
		return 0
	}

	if *paletteTemplate {
		data, err := theme.EncodePalettes(theme.Builtins())
		if err != nil {
			fmt.Fprintf(stderr, "failed to encode palettes: %v\n", err)
			return 1
		}
		stdout.Write(data)
		return 0
	}

	cfg, cfgPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "warning: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}

	// Flags win over the file and the environment.
	if *themeName != "" {
		cfg.Theme.Name = *themeName
	}
	if *localeName != "" {
		cfg.General.Locale = *localeName
	}
	if *seed != 0 {
		cfg.General.Seed = *seed
	}
	if *logLevel != "" {
		cfg.General.LogLevel = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return 1
	}

	printMode := *printPage || !isTerminal(stdout)
	interactive := !printMode && *runLine == ""

	logger, closeLog, err := newLogger(cfg.General, interactive, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "failed to open log file: %v\n", err)
		return 1
	}
	defer closeLog()
	if cfgPath != "" {
		logger.Debug("config loaded", "path", cfgPath)
	}

	seedValue := cfg.General.Seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seedValue))

	catalog := theme.NewCatalog()
	if cfg.Theme.PaletteFile != "" {
		n, err := catalog.LoadFile(cfg.Theme.PaletteFile)
		if err != nil {
			logger.Warn("palette file ignored", "path", cfg.Theme.PaletteFile, "error", err)
		} else {
			logger.Info("palettes loaded", "path", cfg.Theme.PaletteFile, "palettes", n)
		}
	}

	themeValue, _ := theme.Parse(cfg.Theme.Name)
	localeValue, _ := content.ParseLocale(cfg.General.Locale)
	store := state.New(state.Options{
		Theme:   themeValue,
		Locale:  localeValue,
		Catalog: catalog,
		Rand:    rng,
		Logger:  logger,
	})

	if *runLine != "" {
		runOnce(stdout, store, *runLine)
		return 0
	}

	caps := terminal.DetectCapabilities()
	appCfg := app.Config{
		FrameInterval:  cfg.Timing.Frame.Duration,
		RainInterval:   cfg.Timing.Rain.Duration,
		StatusInterval: cfg.Timing.Status.Duration,
		CellWidth:      cfg.Surface.CellWidth,
		CellHeight:     cfg.Surface.CellHeight,
		Mouse:          caps.Mouse && !printMode,
		Profile:        caps.Profile,
		Rand:           rng,
		Logger:         logger,
	}
	if appCfg.CellWidth == 0 || appCfg.CellHeight == 0 {
		appCfg.CellWidth, appCfg.CellHeight = caps.Size.Cell()
	}

	s := sched.New(time.Now())
	panels, _ := config.ResolvePanels(cfg.Layout)
	var facts *cache.Store
	if cfg.Neofetch.Live && !printMode {
		facts, err = cache.NewStore(cache.StoreConfig{Dir: filepath.Join(cfg.General.CacheDir, "facts")})
		if err != nil {
			logger.Warn("host facts cache disabled", "error", err)
		}
	}
	model := app.NewAppModel(appCfg, store, s, buildWidgets(panels, store, s, cfg.Neofetch.Live, facts)...)

	if printMode {
		w, h := printSize(*width, *height, caps.Size)
		updated, _ := model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		model = updated.(app.AppModel)
		fmt.Fprintln(stdout, model.Snapshot())
		model.Quit()
		return 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("received shutdown signal")
		cancel()
	}()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if appCfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	if cfg.Theme.Watch && cfg.Theme.PaletteFile != "" {
		watcher, err := config.NewWatcher(cfg.Theme.PaletteFile, config.DefaultDebounce, func(path string) {
			p.Send(app.PaletteReloadEvent{Path: path})
		}, logger)
		if err != nil {
			logger.Warn("palette watch disabled", "error", err)
		} else {
			watcher.Start(ctx)
			defer watcher.Close()
		}
	}

	logger.Info("starting", "version", version, "theme", themeValue, "locale", localeValue,
		"terminal", caps.Term, "profile", caps.Profile, "panels", len(panels))

	final, err := p.Run()
	if m, ok := final.(app.AppModel); ok {
		m.Quit()
	}
	if err != nil && ctx.Err() == nil {
		logger.Error("TUI error", "error", err)
		return 1
	}
	return 0
}

// loadConfig reads the file given on the command line, or searches the
// standard locations.
func loadConfig(path string) (*config.Config, string, error) {
	if path == "" {
		return config.Load()
	}
	cfg, err := config.LoadFromFile(path)
	return cfg, path, err
}

// newLogger writes to the log file in TUI mode, keeping the alt screen
// clean, and to stderr otherwise.
func newLogger(g config.GeneralConfig, toFile bool, stderr io.Writer) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: parseLevel(g.LogLevel)}
	if !toFile || g.LogFile == "" {
		return slog.New(slog.NewTextHandler(stderr, opts)), func() {}, nil
	}
	if err := ensureLogDir(g.LogFile); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(g.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
}

// isTerminal reports whether w is a terminal the page can take over.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ensureLogDir(logFile string) error {
	return os.MkdirAll(filepath.Dir(logFile), 0755)
}

// buildWidgets creates the page panels in layout order, followed by the
// console. facts may be nil.
func buildWidgets(panels []string, store *state.Store, s *sched.Scheduler, live bool, facts *cache.Store) []app.Widget {
	out := make([]app.Widget, 0, len(panels)+1)
	for _, id := range panels {
		switch id {
		case config.PanelHero:
			out = append(out, widgets.NewHeroWidget(store, s))
		case config.PanelWhoami:
			out = append(out, widgets.NewWhoamiWidget(store))
		case config.PanelExperience:
			out = append(out, widgets.NewExperienceWidget(store))
		case config.PanelStatus:
			out = append(out, widgets.NewStatusWidget(store))
		case config.PanelShortcuts:
			out = append(out, widgets.NewShortcutsWidget(store))
		case config.PanelLogs:
			out = append(out, widgets.NewLogsWidget(store))
		case config.PanelSkills:
			out = append(out, widgets.NewSkillsWidget(store))
		case config.PanelWatch:
			out = append(out, widgets.NewWatchWidget(store))
		case config.PanelNeofetch:
			nw := widgets.NewNeofetchWidget(store, live, sysinfo.Remembering(facts, sysinfo.Collect))
			if f, ok := sysinfo.Last(facts); ok && live {
				nw.SetFacts(f)
			}
			out = append(out, nw)
		}
	}
	return append(out, widgets.NewConsoleWidget(store))
}

func printSize(w, h int, size terminal.Size) (int, int) {
	if w <= 0 {
		w = size.Cols
	}
	if w <= 0 {
		w = defaultPrintWidth
	}
	if h <= 0 {
		h = size.Rows
	}
	if h <= 0 {
		h = defaultPrintHeight
	}
	return w, h
}

// runOnce executes one console line and reports its output and the
// effects a full session would show.
func runOnce(out io.Writer, store *state.Store, line string) {
	r := store.Submit(line)
	fmt.Fprintf(out, "$ %s\n", r.Input)
	if o := store.Output(); o != "" {
		fmt.Fprintln(out, o)
	}
	if n, ok := r.NewTheme(); ok {
		fmt.Fprintf(out, "[effect] theme %s\n", n)
	}
	if r.TogglesRain() {
		onOff := "off"
		if store.Rain() {
			onOff = "on"
		}
		fmt.Fprintf(out, "[effect] rain %s\n", onOff)
	}
	if r.Bursts() {
		fmt.Fprintln(out, "[effect] particle burst")
	}
	if r.Clears() {
		fmt.Fprintln(out, "[effect] output cleared")
	}
}
