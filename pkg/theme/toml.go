package theme

import (
	"bytes"
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// tomlFile is the on-disk palette override file: a list of [[palette]]
// tables, each keyed by an existing theme name.
type tomlFile struct {
	Palettes []tomlPalette `toml:"palette"`
}

type tomlPalette struct {
	Name  string    `toml:"name"`
	Base  tomlBase  `toml:"base"`
	Panel tomlPanel `toml:"panel"`
	Tone  tomlTone  `toml:"tone"`
	Help  tomlHelp  `toml:"help"`
}

type tomlBase struct {
	Background string `toml:"background,omitempty"`
	Foreground string `toml:"foreground,omitempty"`
	Dim        string `toml:"dim,omitempty"`
	Accent     string `toml:"accent,omitempty"`
}

type tomlPanel struct {
	Border      string `toml:"border,omitempty"`
	BorderFocus string `toml:"border_focus,omitempty"`
	Title       string `toml:"title,omitempty"`
}

type tomlTone struct {
	OK    string `toml:"ok,omitempty"`
	Warn  string `toml:"warn,omitempty"`
	Info  string `toml:"info,omitempty"`
	Error string `toml:"error,omitempty"`
}

type tomlHelp struct {
	Key  string `toml:"key,omitempty"`
	Desc string `toml:"desc,omitempty"`
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ParsePalettes decodes a palette override file. Each table is layered
// over the built-in palette of the same name, so a table only needs the
// colors it changes.
func ParsePalettes(data []byte) ([]Palette, error) {
	var f tomlFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("theme: parse TOML: %w", err)
	}

	base := map[Name]Palette{}
	for _, p := range builtins() {
		base[p.Name] = p
	}

	out := make([]Palette, 0, len(f.Palettes))
	for i, tp := range f.Palettes {
		n, err := Parse(tp.Name)
		if err != nil {
			return nil, fmt.Errorf("theme: palette %d: %w", i, err)
		}
		p := base[n]
		overlay(&p.Background, tp.Base.Background)
		overlay(&p.Foreground, tp.Base.Foreground)
		overlay(&p.Dim, tp.Base.Dim)
		overlay(&p.Accent, tp.Base.Accent)
		overlay(&p.Border, tp.Panel.Border)
		overlay(&p.BorderFocus, tp.Panel.BorderFocus)
		overlay(&p.Title, tp.Panel.Title)
		overlay(&p.OK, tp.Tone.OK)
		overlay(&p.Warn, tp.Tone.Warn)
		overlay(&p.Info, tp.Tone.Info)
		overlay(&p.Error, tp.Tone.Error)
		overlay(&p.HelpKey, tp.Help.Key)
		overlay(&p.HelpDesc, tp.Help.Desc)
		if err := validate(p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// EncodePalettes writes palettes in the override file format.
func EncodePalettes(ps []Palette) ([]byte, error) {
	f := tomlFile{Palettes: make([]tomlPalette, len(ps))}
	for i, p := range ps {
		f.Palettes[i] = tomlPalette{
			Name:  string(p.Name),
			Base:  tomlBase{Background: p.Background, Foreground: p.Foreground, Dim: p.Dim, Accent: p.Accent},
			Panel: tomlPanel{Border: p.Border, BorderFocus: p.BorderFocus, Title: p.Title},
			Tone:  tomlTone{OK: p.OK, Warn: p.Warn, Info: p.Info, Error: p.Error},
			Help:  tomlHelp{Key: p.HelpKey, Desc: p.HelpDesc},
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// Builtins returns copies of the built-in palettes in display order.
func Builtins() []Palette {
	return builtins()
}

// LoadFile resets the catalog to the built-ins and applies the overrides
// in path. Returns how many palettes were overridden. On error the
// catalog is left untouched.
func (c *Catalog) LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("theme: read %s: %w", path, err)
	}
	ps, err := ParsePalettes(data)
	if err != nil {
		return 0, err
	}
	c.Reset()
	for _, p := range ps {
		if err := c.Override(p); err != nil {
			return 0, err
		}
	}
	return len(ps), nil
}

// validate checks that every color is present and valid hex.
func validate(p Palette) error {
	fields := []struct {
		name, value string
	}{
		{"background", p.Background},
		{"foreground", p.Foreground},
		{"dim", p.Dim},
		{"accent", p.Accent},
		{"border", p.Border},
		{"border_focus", p.BorderFocus},
		{"title", p.Title},
		{"ok", p.OK},
		{"warn", p.Warn},
		{"info", p.Info},
		{"error", p.Error},
		{"help_key", p.HelpKey},
		{"help_desc", p.HelpDesc},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("theme: %s: missing required field %q", p.Name, f.name)
		}
		if !hexColor.MatchString(f.value) {
			return fmt.Errorf("theme: %s: invalid hex color %q for field %q (expected #RRGGBB)", p.Name, f.value, f.name)
		}
	}
	return nil
}
