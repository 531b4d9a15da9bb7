package particle

import (
	"io"
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/sched"
)

// Canvas is the drawing surface a run paints into.
type Canvas interface {
	Clear()
	FillRect(x, y, w, h float64, color string)
}

// Engine runs one burst at a time on a scheduler's frame callbacks.
type Engine struct {
	sched  *sched.Scheduler
	canvas Canvas
	logger *slog.Logger

	active     []Particle
	frame      *sched.Handle
	onComplete func()
	steps      int
}

// NewEngine creates an idle engine. A nil logger discards.
func NewEngine(s *sched.Scheduler, canvas Canvas, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{sched: s, canvas: canvas, logger: logger}
}

// Run takes ownership of batch and steps it until every particle has
// died, then calls onComplete once. The first step happens before Run
// returns. A run already in progress is abandoned without its onComplete.
func (e *Engine) Run(batch []Particle, onComplete func()) {
	e.Stop()
	e.active = batch
	e.onComplete = onComplete
	e.steps = 0
	e.logger.Debug("burst started", "particles", len(batch))
	e.step(e.sched.Now())
}

// Stop withdraws the pending frame. No step runs and no completion fires
// after Stop until the next Run.
func (e *Engine) Stop() {
	if e.frame.Cancel() {
		e.logger.Debug("burst stopped", "remaining", len(e.active), "steps", e.steps)
	}
	e.frame = nil
	e.active = nil
	e.onComplete = nil
}

// Running reports whether a step is scheduled.
func (e *Engine) Running() bool {
	return e.frame.Active()
}

// Active returns a copy of the live particles.
func (e *Engine) Active() []Particle {
	out := make([]Particle, len(e.active))
	copy(out, e.active)
	return out
}

// Steps returns how many steps the current or last run has taken.
func (e *Engine) Steps() int {
	return e.steps
}

func (e *Engine) step(time.Time) {
	e.frame = nil
	e.canvas.Clear()

	// Reverse order so removal does not skip the next particle.
	for i := len(e.active) - 1; i >= 0; i-- {
		p := &e.active[i]
		e.canvas.FillRect(p.X, p.Y, SquareSize, SquareSize, p.Color)
		if !p.Step() {
			e.active = append(e.active[:i], e.active[i+1:]...)
		}
	}
	e.steps++

	if len(e.active) > 0 {
		e.frame = e.sched.RequestFrame("burst", e.step)
		return
	}

	done := e.onComplete
	e.onComplete = nil
	e.logger.Debug("burst finished", "steps", e.steps)
	if done != nil {
		done()
	}
}
