// Package particle is the burst simulation: a batch of point particles
// stepped once per frame under constant gravity until every particle has
// run out of life.
package particle

import (
	"math/rand"
)

// Physics of a burst. Units are surface units (pixels); a step is one frame.
const (
	Gravity    = 0.3 // added to VY every step
	BurstSize  = 100
	BurstLife  = 100 // steps
	SquareSize = 6.0

	spreadX   = 15.0 // vx in [-7.5, 7.5]
	liftMin   = 2.5  // vy in [-12.5, -2.5]
	liftRange = 10.0
)

// Palette is the fixed set of burst colors.
var Palette = [...]string{
	"#88c0d0", "#81a1c1", "#5e81ac", "#bf616a",
	"#d08770", "#ebcb8b", "#a3be8c", "#b48ead",
}

// Particle is one point in a burst.
type Particle struct {
	ID    int
	X, Y  float64
	VX    float64
	VY    float64
	Life  int
	Color string
}

// Step advances the particle by one frame and reports whether it is
// still alive afterwards.
func (p *Particle) Step() bool {
	p.X += p.VX
	p.Y += p.VY
	p.VY += Gravity
	p.Life--
	return p.Life > 0
}

// NewBurst generates a fresh batch of BurstSize particles at (cx, cy),
// launched upward with random spread.
func NewBurst(rng *rand.Rand, cx, cy float64) []Particle {
	batch := make([]Particle, BurstSize)
	for i := range batch {
		batch[i] = Particle{
			ID:    i,
			X:     cx,
			Y:     cy,
			VX:    (rng.Float64() - 0.5) * spreadX,
			VY:    -liftMin - rng.Float64()*liftRange,
			Life:  BurstLife,
			Color: Palette[rng.Intn(len(Palette))],
		}
	}
	return batch
}
