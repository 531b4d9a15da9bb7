package raster

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/components"
)

var black = colorful.Color{}

// Render draws the whole surface as rows of text, one line per row, with
// each cell colored through profile. Empty cells render as spaces. A wide
// glyph consumes the following cell.
func (s *Surface) Render(profile termenv.Profile) string {
	lines := make([]string, s.rows)
	var b strings.Builder
	for r := 0; r < s.rows; r++ {
		b.Reset()
		for c := 0; c < s.cols; c++ {
			cell := s.cells[r*s.cols+c]
			if cell.Empty() {
				b.WriteByte(' ')
				continue
			}
			glyph := string(cell.Glyph)
			b.WriteString(paint(profile, glyph, cell))
			if w := ansi.StringWidth(glyph); w > 1 {
				c += w - 1
			}
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Overlay splices every non-empty cell onto base, which is treated as
// already-rendered text of the same geometry. Untouched stretches of base
// keep their own styling.
func (s *Surface) Overlay(base string, profile termenv.Profile) string {
	lines := strings.Split(base, "\n")
	for r := 0; r < s.rows && r < len(lines); r++ {
		line := lines[r]
		c := 0
		for c < s.cols {
			if s.cells[r*s.cols+c].Empty() {
				c++
				continue
			}
			start := c
			var seg strings.Builder
			width := 0
			for c < s.cols && !s.cells[r*s.cols+c].Empty() {
				cell := s.cells[r*s.cols+c]
				glyph := string(cell.Glyph)
				seg.WriteString(paint(profile, glyph, cell))
				w := max(ansi.StringWidth(glyph), 1)
				width += w
				c += w
			}
			line = components.Splice(line, seg.String(), start, width)
		}
		lines[r] = line
	}
	return strings.Join(lines, "\n")
}

// Underlay draws the surface behind base: a glyph shows only where every
// cell it covers is blank in base. base keeps its own styling and lines
// missing from it are treated as blank.
func (s *Surface) Underlay(base string, profile termenv.Profile) string {
	lines := strings.Split(base, "\n")
	for len(lines) < s.rows {
		lines = append(lines, "")
	}
	for r := 0; r < s.rows; r++ {
		line := lines[r]
		blank := blankCells(ansi.Strip(line), s.cols)
		c := 0
		for c < s.cols {
			start := c
			var seg strings.Builder
			width := 0
			for c < s.cols {
				cell := s.cells[r*s.cols+c]
				w := max(ansi.StringWidth(string(cell.Glyph)), 1)
				if cell.Empty() || !allBlank(blank, c, w) {
					break
				}
				seg.WriteString(paint(profile, string(cell.Glyph), cell))
				width += w
				c += w
			}
			if width > 0 {
				line = components.Splice(line, seg.String(), start, width)
				continue
			}
			c++
		}
		lines[r] = line
	}
	return strings.Join(lines, "\n")
}

// blankCells marks which of the first n cells of plain are spaces or lie
// past its end.
func blankCells(plain string, n int) []bool {
	blank := make([]bool, n)
	for i := range blank {
		blank[i] = true
	}
	col := 0
	for _, r := range plain {
		if col >= n {
			break
		}
		w := ansi.StringWidth(string(r))
		if r != ' ' {
			for i := col; i < col+max(w, 1) && i < n; i++ {
				blank[i] = false
			}
		}
		col += w
	}
	return blank
}

func allBlank(blank []bool, col, w int) bool {
	if col+w > len(blank) {
		return false
	}
	for i := col; i < col+w; i++ {
		if !blank[i] {
			return false
		}
	}
	return true
}

// paint colors one glyph, dimming it toward black by the cell's alpha.
func paint(profile termenv.Profile, glyph string, cell Cell) string {
	hex := cell.Color
	if cell.Alpha < 1 {
		hex = Dim(hex, cell.Alpha)
	}
	if hex == "" {
		return glyph
	}
	return profile.String(glyph).Foreground(profile.Color(hex)).String()
}

// Dim blends hex toward black, keeping alpha of the original intensity.
// Invalid colors are returned unchanged.
func Dim(hex string, alpha float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return black.BlendRgb(c, alpha).Clamped().Hex()
}
