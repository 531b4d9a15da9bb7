package theme

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var thTestHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// --- Names / Parse ---

func TestNamesOrder(t *testing.T) {
	got := Names()
	want := []Name{Nord, Gruvbox, Dracula, Matrix}
	if len(got) != len(want) {
		t.Fatalf("Names() returned %d themes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	n, err := Parse("  GruvBox ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n != Gruvbox {
		t.Errorf("Parse = %q, want %q", n, Gruvbox)
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("neon")
	if err == nil {
		t.Fatal("Parse(neon) should fail")
	}
	if !strings.Contains(err.Error(), "nord, gruvbox, dracula, matrix") {
		t.Errorf("error %q should list the available themes", err)
	}
}

func TestJoined(t *testing.T) {
	if got := Joined(); got != "nord, gruvbox, dracula, matrix" {
		t.Errorf("Joined() = %q", got)
	}
}

// --- Register ---

func TestRegisterDefault(t *testing.T) {
	r := NewRegister(nil, "")
	if r.Current() != Nord {
		t.Errorf("Current() = %q, want %q", r.Current(), Nord)
	}
}

func TestRegisterSet(t *testing.T) {
	r := NewRegister(NewCatalog(), Nord)
	if !r.Set(Gruvbox) {
		t.Fatal("Set(gruvbox) = false")
	}
	if r.Current() != Gruvbox {
		t.Errorf("Current() = %q, want gruvbox", r.Current())
	}
	if r.Palette().Accent != "#fe8019" {
		t.Errorf("Palette().Accent = %q, want #fe8019", r.Palette().Accent)
	}
}

func TestRegisterRejectsUnknown(t *testing.T) {
	r := NewRegister(NewCatalog(), Dracula)
	if r.Set("neon") {
		t.Error("Set(neon) = true, want false")
	}
	if r.Current() != Dracula {
		t.Errorf("Current() = %q after invalid Set, want dracula", r.Current())
	}
}

// --- Built-in palettes ---

func TestBuiltinsCoverEveryName(t *testing.T) {
	c := NewCatalog()
	for _, n := range Names() {
		p := c.Get(n)
		if p.Name != n {
			t.Errorf("Get(%q).Name = %q", n, p.Name)
		}
	}
}

func TestAllPalettesHaveValidHexColors(t *testing.T) {
	for _, p := range Builtins() {
		if err := validate(p); err != nil {
			t.Errorf("palette %q: %v", p.Name, err)
		}
		for _, c := range []string{p.Background, p.Foreground, p.Accent, p.OK, p.Warn, p.Info} {
			if !thTestHexPattern.MatchString(c) {
				t.Errorf("palette %q: color %q is not #RRGGBB", p.Name, c)
			}
		}
	}
}

func TestGetUnknownFallsBackToDefault(t *testing.T) {
	c := NewCatalog()
	if got := c.Get("neon").Name; got != Default {
		t.Errorf("Get(neon).Name = %q, want %q", got, Default)
	}
}

// --- Overrides ---

func TestOverrideRejectsUnknownName(t *testing.T) {
	c := NewCatalog()
	p := nordPalette()
	p.Name = "neon"
	if err := c.Override(p); err == nil {
		t.Error("Override with unknown name should fail")
	}
}

func TestParsePalettesLayersOverBuiltin(t *testing.T) {
	data := []byte(`
[[palette]]
name = "nord"
[palette.base]
accent = "#ff00ff"
`)
	ps, err := ParsePalettes(data)
	if err != nil {
		t.Fatalf("ParsePalettes: %v", err)
	}
	if len(ps) != 1 {
		t.Fatalf("got %d palettes, want 1", len(ps))
	}
	if ps[0].Accent != "#ff00ff" {
		t.Errorf("Accent = %q, want #ff00ff", ps[0].Accent)
	}
	if ps[0].Background != nordPalette().Background {
		t.Errorf("Background = %q, want built-in %q", ps[0].Background, nordPalette().Background)
	}
}

func TestParsePalettesInvalidHex(t *testing.T) {
	data := []byte(`
[[palette]]
name = "dracula"
[palette.tone]
ok = "green"
`)
	if _, err := ParsePalettes(data); err == nil {
		t.Error("expected error for invalid hex color")
	}
}

func TestParsePalettesUnknownName(t *testing.T) {
	data := []byte(`
[[palette]]
name = "solarized"
`)
	if _, err := ParsePalettes(data); err == nil {
		t.Error("expected error for a theme outside the fixed set")
	}
}

func TestEncodeParseRoundtrip(t *testing.T) {
	data, err := EncodePalettes(Builtins())
	if err != nil {
		t.Fatalf("EncodePalettes: %v", err)
	}
	ps, err := ParsePalettes(data)
	if err != nil {
		t.Fatalf("ParsePalettes: %v", err)
	}
	want := Builtins()
	if len(ps) != len(want) {
		t.Fatalf("roundtrip gave %d palettes, want %d", len(ps), len(want))
	}
	for i := range want {
		if ps[i] != want[i] {
			t.Errorf("palette %d = %+v, want %+v", i, ps[i], want[i])
		}
	}
}

func TestCatalogLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palettes.toml")
	content := "[[palette]]\nname = \"matrix\"\n[palette.base]\nforeground = \"#11ff11\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c := NewCatalog()
	n, err := c.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if n != 1 {
		t.Errorf("LoadFile overrode %d palettes, want 1", n)
	}
	if got := c.Get(Matrix).Foreground; got != "#11ff11" {
		t.Errorf("matrix foreground = %q, want #11ff11", got)
	}

	c.Reset()
	if got := c.Get(Matrix).Foreground; got != matrixPalette().Foreground {
		t.Errorf("after Reset foreground = %q", got)
	}
}

func TestCatalogLoadFileMissing(t *testing.T) {
	c := NewCatalog()
	if _, err := c.LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// --- Styles ---

func TestToneColor(t *testing.T) {
	p := nordPalette()
	cases := map[Tone]string{
		ToneOK:   p.OK,
		ToneWarn: p.Warn,
		ToneInfo: p.Info,
		"bogus":  p.Dim,
	}
	for tone, want := range cases {
		if got := p.ToneColor(tone); got != want {
			t.Errorf("ToneColor(%q) = %q, want %q", tone, got, want)
		}
	}
}

func TestPanelRendersBorder(t *testing.T) {
	out := nordPalette().Panel(true).Render("hi")
	if !strings.Contains(out, "hi") {
		t.Errorf("Panel output %q missing content", out)
	}
	if len(strings.Split(out, "\n")) != 3 {
		t.Errorf("Panel output should be 3 lines (border, body, border), got %q", out)
	}
}
