package app

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/rain"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/status"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/terminal"
)

// Config holds the settings the model needs at construction.
type Config struct {
	FrameInterval  time.Duration
	RainInterval   time.Duration
	StatusInterval time.Duration

	// CellWidth and CellHeight are the pixel size of one cell, used to map
	// burst physics onto the grid.
	CellWidth  int
	CellHeight int

	// Mouse enables clickable zones.
	Mouse bool

	// Profile colors the effect surfaces.
	Profile termenv.Profile

	Rand   *rand.Rand
	Logger *slog.Logger
}

// DefaultConfig returns a Config with the stock timings.
func DefaultConfig() Config {
	return Config{
		FrameInterval:  16 * time.Millisecond,
		RainInterval:   rain.DefaultInterval,
		StatusInterval: status.DefaultInterval,
		CellWidth:      terminal.DefaultCellWidth,
		CellHeight:     terminal.DefaultCellHeight,
		Mouse:          true,
		Profile:        termenv.TrueColor,
	}
}

func (c *Config) fill() {
	def := DefaultConfig()
	if c.FrameInterval <= 0 {
		c.FrameInterval = def.FrameInterval
	}
	if c.RainInterval <= 0 {
		c.RainInterval = def.RainInterval
	}
	if c.StatusInterval <= 0 {
		c.StatusInterval = def.StatusInterval
	}
	if c.CellWidth <= 0 {
		c.CellWidth = def.CellWidth
	}
	if c.CellHeight <= 0 {
		c.CellHeight = def.CellHeight
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}
