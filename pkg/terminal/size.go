package terminal

import (
	"os"
	"strconv"

	xterm "github.com/charmbracelet/x/term"
	"golang.org/x/sys/unix"
)

// Fallback cell size in pixels when the terminal does not report one.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Size is the terminal's dimensions in cells and, when known, pixels.
type Size struct {
	Cols   int
	Rows   int
	PixelW int
	PixelH int
}

// Cell returns the pixel size of one cell, falling back to 8x16 for any
// axis the terminal did not report.
func (s Size) Cell() (w, h int) {
	w, h = DefaultCellWidth, DefaultCellHeight
	if s.PixelW > 0 && s.Cols > 0 {
		if cw := s.PixelW / s.Cols; cw > 0 {
			w = cw
		}
	}
	if s.PixelH > 0 && s.Rows > 0 {
		if ch := s.PixelH / s.Rows; ch > 0 {
			h = ch
		}
	}
	return w, h
}

// GetSize returns the current terminal dimensions, trying stdout, then
// stderr, then COLUMNS/LINES, then 80x24.
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if s, ok := sizeOf(f.Fd()); ok {
			return s
		}
	}
	return sizeFromEnv()
}

// GetSizeFromFd is GetSize for a specific descriptor.
func GetSizeFromFd(fd uintptr) Size {
	if s, ok := sizeOf(fd); ok {
		return s
	}
	return sizeFromEnv()
}

// sizeOf asks the kernel for the window size, which carries pixel
// dimensions on terminals that fill them in. Platforms without
// TIOCGWINSZ pixel fields fall through to x/term.
func sizeOf(fd uintptr) (Size, bool) {
	if ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ); err == nil && ws.Col > 0 && ws.Row > 0 {
		return Size{
			Cols:   int(ws.Col),
			Rows:   int(ws.Row),
			PixelW: int(ws.Xpixel),
			PixelH: int(ws.Ypixel),
		}, true
	}
	if w, h, err := xterm.GetSize(fd); err == nil && w > 0 && h > 0 {
		return Size{Cols: w, Rows: h}, true
	}
	return Size{}, false
}

func sizeFromEnv() Size {
	return Size{Cols: envInt("COLUMNS", 80), Rows: envInt("LINES", 24)}
}

// envInt reads a positive integer from the environment.
func envInt(name string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
