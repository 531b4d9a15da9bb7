// Package components holds the ANSI-aware text primitives shared by the
// ttyfolio render layer: measuring, truncating and padding styled strings,
// and splicing one rendered block over another so effect layers can be
// composited onto the page.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the visible character width of s in terminal cells.
// ANSI escape sequences are ignored and wide characters count as two.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most maxWidth visible cells, appending tail when
// anything was removed. The tail counts toward maxWidth.
func Truncate(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// PadRight pads s with trailing spaces to width visible cells. Strings
// already at least that wide are returned unchanged.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// PadCenter centers s within width. Odd padding puts the extra space on
// the right.
func PadCenter(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	total := width - vis
	left := total / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}

// Wrap word-wraps s at width, respecting escapes and wide characters.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}

// Splice replaces the cells [col, col+width) of line with seg. seg must
// occupy exactly width visible cells. A line shorter than col is padded
// with spaces first.
func Splice(line, seg string, col, width int) string {
	if col < 0 || width <= 0 {
		return line
	}
	lineW := VisibleLen(line)
	if lineW < col {
		line += strings.Repeat(" ", col-lineW)
		lineW = col
	}
	left := ansi.Truncate(line, col, "")
	right := ""
	if lineW > col+width {
		right = ansi.TruncateLeft(line, col+width, "")
	}
	if !strings.Contains(line, "\x1b") && !strings.Contains(seg, "\x1b") {
		return left + seg + right
	}
	// Reset between segments so seg's styling cannot bleed into the tail.
	return left + "\x1b[0m" + seg + "\x1b[0m" + right
}

// Place splices every line of block onto base starting at (col, row).
// Lines that fall outside base are dropped. Each block line is padded to
// the block's widest line so the placed rectangle is opaque.
func Place(base, block string, col, row int) string {
	baseLines := strings.Split(base, "\n")
	blockLines := strings.Split(block, "\n")
	width := 0
	for _, l := range blockLines {
		width = max(width, VisibleLen(l))
	}
	for i, l := range blockLines {
		r := row + i
		if r < 0 || r >= len(baseLines) {
			continue
		}
		baseLines[r] = Splice(baseLines[r], PadRight(l, width), col, width)
	}
	return strings.Join(baseLines, "\n")
}
