// Package rain draws the falling-glyph background. Each glyph column owns
// one drop row. Every redraw dims the previous frame, draws a random glyph
// at each drop row and moves the drops down one row. Drops that have left
// the bottom edge occasionally restart from the top.
package rain

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/raster"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/sched"
)

// Glyphs is the fixed rain character set.
const Glyphs = "アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヲン01"

const (
	// DefaultInterval is the redraw period.
	DefaultInterval = 33 * time.Millisecond

	// Color of a freshly drawn glyph.
	Color = "#00ff00"

	trailOpacity = 0.05
	resetChance  = 0.025

	// glyphWidth is the column pitch in cells. The katakana are wide.
	glyphWidth = 2
)

var glyphs = []rune(Glyphs)

// Renderer paints rain onto its own surface while started.
type Renderer struct {
	sched    *sched.Scheduler
	viewport *raster.Viewport
	rng      *rand.Rand
	interval time.Duration
	logger   *slog.Logger

	surface     *raster.Surface
	drops       []int
	handle      *sched.Handle
	unsubscribe func()
	frames      int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithInterval overrides the redraw period.
func WithInterval(d time.Duration) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a stopped renderer bound to the viewport's geometry.
func New(s *sched.Scheduler, v *raster.Viewport, rng *rand.Rand, opts ...Option) *Renderer {
	r := &Renderer{
		sched:    s,
		viewport: v,
		rng:      rng,
		interval: DefaultInterval,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		surface:  v.NewSurface(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Start subscribes to viewport resizes and schedules the redraw. Starting
// a running renderer does nothing.
func (r *Renderer) Start() {
	if r.Running() {
		return
	}
	cols, rows := r.viewport.Size()
	r.resize(cols, rows)
	r.unsubscribe = r.viewport.Subscribe(r.resize)
	r.handle = r.sched.Every("rain", r.interval, r.draw)
	r.logger.Debug("rain started", "columns", len(r.drops), "interval", r.interval)
}

// Stop cancels the redraw, drops the resize subscription and clears the
// surface and the drop rows, so the next Start rains from the top.
// Stopping a stopped renderer does nothing.
func (r *Renderer) Stop() {
	if r.handle == nil && r.unsubscribe == nil {
		return
	}
	r.handle.Cancel()
	r.handle = nil
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
	r.surface.Clear()
	r.drops = nil
	r.logger.Debug("rain stopped", "frames", r.frames)
}

// Running reports whether the redraw is scheduled.
func (r *Renderer) Running() bool {
	return r.handle.Active()
}

// Surface returns the raster the rain paints into.
func (r *Renderer) Surface() *raster.Surface {
	return r.surface
}

// Columns returns a copy of the per-column drop rows.
func (r *Renderer) Columns() []int {
	out := make([]int, len(r.drops))
	copy(out, r.drops)
	return out
}

// Frames returns how many redraws have run since construction.
func (r *Renderer) Frames() int {
	return r.frames
}

// resize rebuilds the surface for the new geometry. Existing columns keep
// their drop rows and new columns start at the top.
func (r *Renderer) resize(cols, rows int) {
	r.surface.Resize(cols, rows)
	n := cols / glyphWidth
	if n < len(r.drops) {
		r.drops = r.drops[:n]
		return
	}
	for len(r.drops) < n {
		r.drops = append(r.drops, 0)
	}
}

func (r *Renderer) draw(time.Time) {
	r.surface.Fade(trailOpacity)
	rows := r.surface.Rows()
	for i, row := range r.drops {
		g := glyphs[r.rng.Intn(len(glyphs))]
		r.surface.SetGlyph(i*glyphWidth, row, g, Color)
		if row >= rows && r.rng.Float64() < resetChance {
			r.drops[i] = 0
			continue
		}
		r.drops[i]++
	}
	r.frames++
}
