package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "ttyfolio"

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/ttyfolio/config.toml
//  2. ~/.config/ttyfolio/config.toml
//
// If no file exists, returns DefaultConfig() with env overrides applied.
// The second result is the path that was read, or "".
func Load() (*Config, string, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			cfg, err := LoadFromFile(p)
			return cfg, p, err
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, "", nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if cfg.Theme.PaletteFile != "" && !filepath.IsAbs(cfg.Theme.PaletteFile) {
		cfg.Theme.PaletteFile = filepath.Join(filepath.Dir(path), cfg.Theme.PaletteFile)
	}
	return cfg, nil
}

// LoadFromReader decodes TOML over the defaults and applies env overrides.
// Unknown keys are an error.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys: %v", undecoded)
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
			LogFile:  filepath.Join(xdgCacheHome(home), AppName, AppName+".log"),
			CacheDir: filepath.Join(xdgCacheHome(home), AppName),
			Locale:   "en",
		},
		Theme: ThemeConfig{
			Name: "nord",
		},
		Layout: LayoutConfig{
			Preset: PresetFull,
		},
		Timing: TimingConfig{
			Frame:  Ms(16),
			Rain:   Ms(33),
			Status: Ms(4500),
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TTYFOLIO_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("TTYFOLIO_LOCALE"); v != "" {
		cfg.General.Locale = v
	}
	if v := os.Getenv("TTYFOLIO_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
	if v := os.Getenv("TTYFOLIO_LAYOUT"); v != "" {
		cfg.Layout.Preset = v
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, AppName, "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, AppName, "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgCacheHome returns XDG_CACHE_HOME or ~/.cache as fallback.
func xdgCacheHome(home string) string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".cache")
}
