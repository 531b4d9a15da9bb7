package raster

import (
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestFillRectMapsUnitsToCells(t *testing.T) {
	s := NewSurface(10, 5, 8, 16)

	// A 6x6 square at (8, 16) sits entirely inside cell (1, 1).
	s.FillRect(8, 16, 6, 6, "#ff0000")
	if got := s.Filled(); got != 1 {
		t.Errorf("Filled() = %d, want 1", got)
	}
	if got := s.At(1, 1).Glyph; got != Block {
		t.Errorf("At(1, 1).Glyph = %q, want %q", got, Block)
	}

	// Straddling a cell boundary touches both cells.
	s.Clear()
	s.FillRect(5, 0, 6, 6, "#ff0000")
	if got := s.Filled(); got != 2 {
		t.Errorf("Filled() = %d, want 2", got)
	}
	if s.At(0, 0).Empty() || s.At(1, 0).Empty() {
		t.Error("expected cells (0, 0) and (1, 0) filled")
	}
}

func TestFillRectClipsOutside(t *testing.T) {
	s := NewSurface(4, 4, 8, 16)
	s.FillRect(-100, -100, 6, 6, "#fff000")
	s.FillRect(1000, 1000, 6, 6, "#fff000")
	if got := s.Filled(); got != 0 {
		t.Errorf("Filled() = %d, want 0", got)
	}
}

func TestSetGlyphOutOfRangeIgnored(t *testing.T) {
	s := NewSurface(2, 2, 0, 0)
	s.SetGlyph(5, 5, 'x', "#00ff00")
	s.SetGlyph(-1, 0, 'x', "#00ff00")
	if got := s.Filled(); got != 0 {
		t.Errorf("Filled() = %d, want 0", got)
	}
	if !s.At(9, 9).Empty() {
		t.Error("At out of range is not empty")
	}
}

func TestFadeDimsThenClears(t *testing.T) {
	s := NewSurface(1, 1, 8, 16)
	s.SetGlyph(0, 0, 'ア', "#00ff00")

	s.Fade(0.05)
	if a := s.At(0, 0).Alpha; math.Abs(a-0.95) > 1e-9 {
		t.Errorf("alpha after one fade = %v, want 0.95", a)
	}

	for i := 0; i < 100; i++ {
		s.Fade(0.05)
	}
	if !s.At(0, 0).Empty() {
		t.Error("cell did not fade out")
	}
}

func TestResizeClears(t *testing.T) {
	s := NewSurface(3, 3, 8, 16)
	s.SetGlyph(1, 1, 'x', "#ffffff")
	s.Resize(5, 2)
	if s.Cols() != 5 || s.Rows() != 2 {
		t.Errorf("size = %dx%d, want 5x2", s.Cols(), s.Rows())
	}
	if got := s.Filled(); got != 0 {
		t.Errorf("Filled() = %d, want 0", got)
	}
	if s.Width() != 40 || s.Height() != 32 {
		t.Errorf("units = %vx%v, want 40x32", s.Width(), s.Height())
	}
}

func TestRenderAsciiProfile(t *testing.T) {
	s := NewSurface(4, 2, 8, 16)
	s.SetGlyph(1, 0, '0', "#00ff00")
	s.SetGlyph(0, 1, 'ア', "#00ff00")

	lines := strings.Split(s.Render(termenv.Ascii), "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	if lines[0] != " 0  " {
		t.Errorf("line 0 = %q", lines[0])
	}
	// The wide glyph consumes its neighbour cell.
	if lines[1] != "ア  " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestOverlaySplicesCells(t *testing.T) {
	s := NewSurface(6, 2, 8, 16)
	s.SetGlyph(2, 0, '#', "#ff0000")
	s.SetGlyph(3, 0, '#', "#ff0000")

	if got := s.Overlay("abcdef\nghijkl", termenv.Ascii); got != "ab##ef\nghijkl" {
		t.Errorf("Overlay = %q", got)
	}
}

func TestUnderlayShowsOnlyThroughBlanks(t *testing.T) {
	s := NewSurface(6, 2, 8, 16)
	s.SetGlyph(0, 0, 'x', "")
	s.SetGlyph(3, 0, 'y', "")
	s.SetGlyph(5, 0, 'z', "")
	s.SetGlyph(1, 1, 'w', "")

	lines := strings.Split(s.Underlay("ab  ", termenv.Ascii), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want missing base rows added", len(lines))
	}
	if lines[0] != "ab y z" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != " w" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestDim(t *testing.T) {
	tests := []struct {
		hex   string
		alpha float64
		want  string
	}{
		{"#ffffff", 0, "#000000"},
		{"#ffffff", 1, "#ffffff"},
		{"not-a-color", 0.5, "not-a-color"},
	}
	for _, tt := range tests {
		if got := Dim(tt.hex, tt.alpha); got != tt.want {
			t.Errorf("Dim(%q, %v) = %q, want %q", tt.hex, tt.alpha, got, tt.want)
		}
	}
}

func TestViewportSubscribeAndUnsubscribe(t *testing.T) {
	v := NewViewport(80, 24, 0, 0)
	var seen [][2]int
	unsub := v.Subscribe(func(c, r int) { seen = append(seen, [2]int{c, r}) })
	if got := v.Subscribers(); got != 1 {
		t.Fatalf("Subscribers() = %d, want 1", got)
	}

	v.Resize(100, 30)
	v.Resize(100, 30) // no change, no broadcast
	if want := [][2]int{{100, 30}}; !slices.Equal(seen, want) {
		t.Errorf("seen = %v, want %v", seen, want)
	}

	unsub()
	unsub()
	if got := v.Subscribers(); got != 0 {
		t.Errorf("Subscribers() = %d after unsubscribe, want 0", got)
	}
	v.Resize(120, 40)
	if len(seen) != 1 {
		t.Errorf("callback ran after unsubscribe: %v", seen)
	}
}

func TestViewportCenterInUnits(t *testing.T) {
	v := NewViewport(100, 50, 8, 16)
	if x, y := v.Center(); x != 400 || y != 400 {
		t.Errorf("Center() = (%v, %v), want (400, 400)", x, y)
	}
}
