// Package theme holds the fixed set of page themes, their palettes and the
// register that tracks which one is active.
package theme

import (
	"fmt"
	"strings"
	"sync"
)

// Name identifies one of the fixed themes.
type Name string

const (
	Nord    Name = "nord"
	Gruvbox Name = "gruvbox"
	Dracula Name = "dracula"
	Matrix  Name = "matrix"
)

// Default is the theme a fresh register starts on.
const Default = Nord

var names = []Name{Nord, Gruvbox, Dracula, Matrix}

// Names returns every theme name in display order.
func Names() []Name {
	out := make([]Name, len(names))
	copy(out, names)
	return out
}

// Valid reports whether n is one of the fixed themes.
func Valid(n Name) bool {
	for _, k := range names {
		if k == n {
			return true
		}
	}
	return false
}

// Parse resolves a user-supplied theme name. Matching is case-insensitive.
func Parse(s string) (Name, error) {
	n := Name(strings.ToLower(strings.TrimSpace(s)))
	if !Valid(n) {
		return "", fmt.Errorf("theme: unknown theme %q (available: %s)", s, Joined())
	}
	return n, nil
}

// Joined returns the theme names separated by ", ".
func Joined() string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}

// Palette is the color set for one theme. Every color is "#rrggbb".
type Palette struct {
	Name Name

	// Base colors
	Background string
	Foreground string
	Dim        string
	Accent     string

	// Panel chrome
	Border      string
	BorderFocus string
	Title       string

	// Tones
	OK    string
	Warn  string
	Info  string
	Error string

	HelpKey  string
	HelpDesc string
}

// Catalog maps every theme name to its palette. Palettes can be replaced
// but the set of names is fixed.
type Catalog struct {
	mu       sync.RWMutex
	palettes map[Name]Palette
}

// NewCatalog returns a catalog holding the built-in palettes.
func NewCatalog() *Catalog {
	c := &Catalog{palettes: make(map[Name]Palette, len(names))}
	for _, p := range builtins() {
		c.palettes[p.Name] = p
	}
	return c
}

// Get returns the palette for n, falling back to the default theme.
func (c *Catalog) Get(n Name) Palette {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if p, ok := c.palettes[n]; ok {
		return p
	}
	return c.palettes[Default]
}

// Override replaces the palette registered under p.Name.
func (c *Catalog) Override(p Palette) error {
	if !Valid(p.Name) {
		return fmt.Errorf("theme: cannot override unknown theme %q", p.Name)
	}
	if err := validate(p); err != nil {
		return err
	}
	c.mu.Lock()
	c.palettes[p.Name] = p
	c.mu.Unlock()
	return nil
}

// Reset restores the built-in palettes.
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range builtins() {
		c.palettes[p.Name] = p
	}
}

// Register is the active-theme state. It only ever holds a valid name.
type Register struct {
	catalog *Catalog
	current Name
}

// NewRegister starts on initial, or on Default when initial is invalid.
func NewRegister(c *Catalog, initial Name) *Register {
	if c == nil {
		c = NewCatalog()
	}
	if !Valid(initial) {
		initial = Default
	}
	return &Register{catalog: c, current: initial}
}

// Current returns the active theme name.
func (r *Register) Current() Name {
	return r.current
}

// Set switches to n. Invalid names leave the register unchanged and
// return false.
func (r *Register) Set(n Name) bool {
	if !Valid(n) {
		return false
	}
	r.current = n
	return true
}

// Palette returns the active palette.
func (r *Register) Palette() Palette {
	return r.catalog.Get(r.current)
}

// Catalog returns the catalog the register reads palettes from.
func (r *Register) Catalog() *Catalog {
	return r.catalog
}
