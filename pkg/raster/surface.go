// Package raster is the drawing surface the particle engine and rain
// renderer paint into. A Surface is a grid of terminal cells addressed
// either directly (SetGlyph) or in surface units (FillRect), where one
// cell spans CellW x CellH units. Units stand in for pixels so that
// physics constants tuned for a pixel canvas keep their feel.
package raster

import (
	"math"
)

// DefaultCellW and DefaultCellH approximate a typical monospace cell when
// the terminal does not report pixel dimensions.
const (
	DefaultCellW = 8
	DefaultCellH = 16
)

// fadeFloor is the alpha below which a faded cell is considered empty.
const fadeFloor = 0.08

// Block is the glyph FillRect paints with.
const Block = '█'

// Cell is one terminal cell. A zero Glyph means the cell is empty.
type Cell struct {
	Glyph rune
	Color string // hex "#rrggbb"
	Alpha float64
}

// Empty reports whether nothing is drawn in the cell.
func (c Cell) Empty() bool {
	return c.Glyph == 0
}

// Surface is a fixed-size cell grid. The zero value is an empty 0x0
// surface; call Resize before drawing.
type Surface struct {
	cols, rows   int
	cellW, cellH int
	cells        []Cell
}

// NewSurface creates a cleared surface. Non-positive cell sizes fall back
// to the defaults.
func NewSurface(cols, rows, cellW, cellH int) *Surface {
	s := &Surface{}
	s.SetCellSize(cellW, cellH)
	s.Resize(cols, rows)
	return s
}

// SetCellSize changes the unit scale without touching the cells.
func (s *Surface) SetCellSize(cellW, cellH int) {
	if cellW <= 0 {
		cellW = DefaultCellW
	}
	if cellH <= 0 {
		cellH = DefaultCellH
	}
	s.cellW, s.cellH = cellW, cellH
}

// Resize reallocates the grid and clears it. Negative sizes become 0.
func (s *Surface) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	s.cols, s.rows = cols, rows
	s.cells = make([]Cell, cols*rows)
}

// Cols returns the width in cells.
func (s *Surface) Cols() int { return s.cols }

// Rows returns the height in cells.
func (s *Surface) Rows() int { return s.rows }

// Width returns the width in units.
func (s *Surface) Width() float64 { return float64(s.cols * s.cellW) }

// Height returns the height in units.
func (s *Surface) Height() float64 { return float64(s.rows * s.cellH) }

// Clear empties every cell.
func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = Cell{}
	}
}

// At returns the cell at (col, row). Out-of-range positions are empty.
func (s *Surface) At(col, row int) Cell {
	if !s.inBounds(col, row) {
		return Cell{}
	}
	return s.cells[row*s.cols+col]
}

// SetGlyph draws a fully opaque glyph at (col, row). Out-of-range
// positions are clipped silently.
func (s *Surface) SetGlyph(col, row int, glyph rune, color string) {
	if !s.inBounds(col, row) {
		return
	}
	s.cells[row*s.cols+col] = Cell{Glyph: glyph, Color: color, Alpha: 1}
}

// FillRect paints the unit-space rectangle (x, y, w, h) with solid blocks.
// Any cell the rectangle touches is filled.
func (s *Surface) FillRect(x, y, w, h float64, color string) {
	if w <= 0 || h <= 0 || s.cols == 0 || s.rows == 0 {
		return
	}
	c0 := int(math.Floor(x / float64(s.cellW)))
	r0 := int(math.Floor(y / float64(s.cellH)))
	c1 := int(math.Ceil((x+w)/float64(s.cellW))) - 1
	r1 := int(math.Ceil((y+h)/float64(s.cellH))) - 1
	for r := max(r0, 0); r <= min(r1, s.rows-1); r++ {
		for c := max(c0, 0); c <= min(c1, s.cols-1); c++ {
			s.cells[r*s.cols+c] = Cell{Glyph: Block, Color: color, Alpha: 1}
		}
	}
}

// Fade paints a black overlay of the given opacity over the whole grid,
// dimming every cell. Cells that fall below the visibility floor are
// cleared.
func (s *Surface) Fade(opacity float64) {
	if opacity <= 0 {
		return
	}
	keep := 1 - math.Min(opacity, 1)
	for i := range s.cells {
		c := &s.cells[i]
		if c.Empty() {
			continue
		}
		c.Alpha *= keep
		if c.Alpha < fadeFloor {
			*c = Cell{}
		}
	}
}

// Filled returns the number of non-empty cells.
func (s *Surface) Filled() int {
	n := 0
	for _, c := range s.cells {
		if !c.Empty() {
			n++
		}
	}
	return n
}

func (s *Surface) inBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < s.cols && row < s.rows
}
