// Package status simulates the telemetry tiles and the diagnostics log
// shown on the page. Both are cosmetic: values drift randomly on a timer
// and the log fills from a fixed set of messages.
package status

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/sched"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/theme"
)

// DefaultInterval is how often the board mutates one tile.
const DefaultInterval = 4500 * time.Millisecond

// Container count bounds for the "Containers" tile.
const (
	MinContainers = 6
	MaxContainers = 12
)

// Tile is one labelled telemetry value. Label is the stable identity.
type Tile struct {
	Label  string
	Value  string
	Detail string
	Tone   theme.Tone
}

// DefaultTiles returns the initial tile set.
func DefaultTiles() []Tile {
	return []Tile{
		{Label: "CI/CD", Value: "passing", Detail: "github actions", Tone: theme.ToneOK},
		{Label: "Containers", Value: "10 up", Detail: "docker-compose", Tone: theme.ToneWarn},
		{Label: "Monitoring", Value: "green", Detail: "prom+grafana", Tone: theme.ToneOK},
		{Label: "Design queue", Value: "2 mocks", Detail: "figma", Tone: theme.ToneInfo},
	}
}

// rule mutates a tile in place.
type rule func(rng *rand.Rand, t *Tile)

var pipelineStates = []struct {
	value string
	tone  theme.Tone
}{
	{"passing", theme.ToneOK},
	{"queued", theme.ToneInfo},
	{"deploying", theme.ToneWarn},
}

var monitoringStates = []string{"green", "violet", "teal"}

var rules = map[string]rule{
	"Containers": func(rng *rand.Rand, t *Tile) {
		n := leadingInt(t.Value, MinContainers)
		if rng.Float64() > 0.5 {
			n++
		} else {
			n--
		}
		n = max(MinContainers, min(MaxContainers, n))
		t.Value = fmt.Sprintf("%d up", n)
	},
	"Design queue": func(rng *rand.Rand, t *Tile) {
		t.Value = fmt.Sprintf("%d mocks", rng.Intn(3)+1)
	},
	"CI/CD": func(rng *rand.Rand, t *Tile) {
		s := pipelineStates[rng.Intn(len(pipelineStates))]
		t.Value, t.Tone = s.value, s.tone
	},
	"Monitoring": func(rng *rand.Rand, t *Tile) {
		t.Value = monitoringStates[rng.Intn(len(monitoringStates))]
	},
}

// leadingInt parses the number at the start of s ("10 up" -> 10).
func leadingInt(s string, def int) int {
	field, _, _ := strings.Cut(strings.TrimSpace(s), " ")
	n, err := strconv.Atoi(field)
	if err != nil {
		return def
	}
	return n
}

// Board owns a fixed, ordered tile set.
type Board struct {
	tiles []Tile
	rng   *rand.Rand
	ticks int
}

// NewBoard copies tiles into a new board.
func NewBoard(tiles []Tile, rng *rand.Rand) *Board {
	return &Board{tiles: append([]Tile(nil), tiles...), rng: rng}
}

// Tick picks one tile uniformly and applies its label's rule. Tiles
// without a rule are left alone for this tick. Returns the picked index
// and whether the tile has a rule.
func (b *Board) Tick() (int, bool) {
	b.ticks++
	if len(b.tiles) == 0 {
		return -1, false
	}
	i := b.rng.Intn(len(b.tiles))
	r, ok := rules[b.tiles[i].Label]
	if !ok {
		return i, false
	}
	r(b.rng, &b.tiles[i])
	return i, true
}

// Tiles returns a copy of the tiles in their fixed order.
func (b *Board) Tiles() []Tile {
	return append([]Tile(nil), b.tiles...)
}

// Ticks returns how many times Tick has run.
func (b *Board) Ticks() int {
	return b.ticks
}

// Start registers Tick on s every interval.
func (b *Board) Start(s *sched.Scheduler, every time.Duration) *sched.Handle {
	if every <= 0 {
		every = DefaultInterval
	}
	return s.Every("status", every, func(time.Time) { b.Tick() })
}
