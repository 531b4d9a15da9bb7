package config

import (
	"fmt"
	"strings"
)

// Panel IDs, in the order the full page shows them.
const (
	PanelHero       = "hero"
	PanelWhoami     = "whoami"
	PanelExperience = "experience"
	PanelStatus     = "status"
	PanelShortcuts  = "shortcuts"
	PanelLogs       = "logs"
	PanelSkills     = "skills"
	PanelWatch      = "watch"
	PanelNeofetch   = "neofetch"
)

// Layout preset names.
const (
	PresetFull    = "full"
	PresetCompact = "compact"
	PresetOps     = "ops"
	PresetCustom  = "custom"
)

// AllPanels returns every panel ID in page order.
func AllPanels() []string {
	return []string{
		PanelHero, PanelWhoami, PanelExperience, PanelStatus, PanelShortcuts,
		PanelLogs, PanelSkills, PanelWatch, PanelNeofetch,
	}
}

// LayoutPreset returns the panels for a named preset. Unknown names get
// the full page.
func LayoutPreset(name string) []string {
	switch strings.ToLower(name) {
	case PresetCompact:
		return compactPreset()
	case PresetOps:
		return opsPreset()
	default:
		return AllPanels()
	}
}

// compactPreset keeps the introduction and the interactive panels.
func compactPreset() []string {
	return []string{PanelHero, PanelStatus, PanelLogs, PanelNeofetch}
}

// opsPreset leads with the live panels.
func opsPreset() []string {
	return []string{PanelStatus, PanelLogs, PanelWatch, PanelNeofetch, PanelShortcuts}
}

// ResolvePanels returns the panel list for a layout. The "custom" preset
// uses Panels verbatim; every ID must be known and appear once.
func ResolvePanels(l LayoutConfig) ([]string, error) {
	if !strings.EqualFold(l.Preset, PresetCustom) {
		return LayoutPreset(l.Preset), nil
	}
	if len(l.Panels) == 0 {
		return nil, fmt.Errorf("layout.panels: custom preset needs at least one panel")
	}
	known := map[string]bool{}
	for _, p := range AllPanels() {
		known[p] = true
	}
	seen := map[string]bool{}
	out := make([]string, 0, len(l.Panels))
	for _, p := range l.Panels {
		p = strings.ToLower(strings.TrimSpace(p))
		if !known[p] {
			return nil, fmt.Errorf("layout.panels: unknown panel %q", p)
		}
		if seen[p] {
			return nil, fmt.Errorf("layout.panels: panel %q listed twice", p)
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, nil
}
