package config

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/content"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/theme"
)

// ErrInvalidTheme is wrapped by Validate when the theme name is unknown.
var ErrInvalidTheme = errors.New("invalid theme")

// ErrInvalidLocale is wrapped by Validate when the locale is unknown.
var ErrInvalidLocale = errors.New("invalid locale")

// Config is the full ttyfolio configuration.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Theme    ThemeConfig    `toml:"theme"`
	Layout   LayoutConfig   `toml:"layout"`
	Timing   TimingConfig   `toml:"timing"`
	Surface  SurfaceConfig  `toml:"surface"`
	Neofetch NeofetchConfig `toml:"neofetch"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
	CacheDir string `toml:"cache_dir"`
	Locale   string `toml:"locale"`
	// Seed fixes the random source for tiles, log lines and effects.
	// 0 seeds from the clock.
	Seed int64 `toml:"seed"`
}

// ThemeConfig selects the starting theme and optional palette overrides.
type ThemeConfig struct {
	Name        string `toml:"name"`
	PaletteFile string `toml:"palette_file"`
	Watch       bool   `toml:"watch"`
}

// LayoutConfig picks which panels the page shows, in order.
type LayoutConfig struct {
	Preset string   `toml:"preset"`
	Panels []string `toml:"panels"`
}

// TimingConfig holds the animation and simulation periods.
type TimingConfig struct {
	Frame  Duration `toml:"frame"`
	Rain   Duration `toml:"rain"`
	Status Duration `toml:"status"`
}

// SurfaceConfig is the pixel size of one terminal cell, used to map the
// burst physics onto the grid. 0 means detect, falling back to 8x16.
type SurfaceConfig struct {
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
}

// NeofetchConfig controls the neofetch panel.
type NeofetchConfig struct {
	// Live replaces the static facts with the host's own.
	Live bool `toml:"live"`
}

// Validate checks the configuration for values the program cannot use.
func (c *Config) Validate() error {
	var errs []error
	if _, err := theme.Parse(c.Theme.Name); err != nil {
		errs = append(errs, fmt.Errorf("theme.name: %w: %q", ErrInvalidTheme, c.Theme.Name))
	}
	if _, err := content.ParseLocale(c.General.Locale); err != nil {
		errs = append(errs, fmt.Errorf("general.locale: %w: %q", ErrInvalidLocale, c.General.Locale))
	}
	switch strings.ToLower(c.General.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("general.log_level: unknown level %q", c.General.LogLevel))
	}
	for name, d := range map[string]Duration{
		"timing.frame":  c.Timing.Frame,
		"timing.rain":   c.Timing.Rain,
		"timing.status": c.Timing.Status,
	} {
		if d.Duration <= 0 {
			errs = append(errs, fmt.Errorf("%s: must be positive, got %s", name, d.Duration))
		}
	}
	if c.Surface.CellWidth < 0 || c.Surface.CellHeight < 0 {
		errs = append(errs, fmt.Errorf("surface: negative cell size %dx%d", c.Surface.CellWidth, c.Surface.CellHeight))
	}
	if _, err := ResolvePanels(c.Layout); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
