package status

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/sched"
	"gitlab.com/tinyland/lab/ttyfolio/pkg/theme"
)

var t0 = time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)

func TestContainersStayInRange(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		b := NewBoard(DefaultTiles(), rand.New(rand.NewSource(seed)))
		for i := 0; i < 2000; i++ {
			b.Tick()
			n := leadingInt(b.Tiles()[1].Value, -1)
			if n < MinContainers || n > MaxContainers {
				t.Fatalf("seed %d tick %d: %d containers, want [%d, %d]", seed, i, n, MinContainers, MaxContainers)
			}
		}
	}
}

func TestAtMostOneTileChangesPerTick(t *testing.T) {
	b := NewBoard(DefaultTiles(), rand.New(rand.NewSource(1)))
	for i := 0; i < 500; i++ {
		before := b.Tiles()
		picked, _ := b.Tick()
		after := b.Tiles()

		if len(after) != len(before) {
			t.Fatalf("tick %d: %d tiles, want %d", i, len(after), len(before))
		}
		for j := range before {
			if before[j].Label != after[j].Label || before[j].Detail != after[j].Detail {
				t.Errorf("tick %d: tile %d label or detail changed", i, j)
			}
			if j != picked && before[j] != after[j] {
				t.Errorf("tick %d: tile %d changed but %d was picked", i, j, picked)
			}
		}
	}
}

func TestRulesProduceKnownValues(t *testing.T) {
	b := NewBoard(DefaultTiles(), rand.New(rand.NewSource(9)))
	allowed := []struct {
		tile   int
		values []string
	}{
		{0, []string{"passing", "queued", "deploying"}},
		{2, []string{"green", "violet", "teal"}},
		{3, []string{"1 mocks", "2 mocks", "3 mocks"}},
	}
	for i := 0; i < 500; i++ {
		b.Tick()
		tiles := b.Tiles()
		for _, a := range allowed {
			if v := tiles[a.tile].Value; !slices.Contains(a.values, v) {
				t.Fatalf("tick %d: tile %d value %q not in %v", i, a.tile, v, a.values)
			}
		}
	}
}

func TestPipelineToneFollowsValue(t *testing.T) {
	b := NewBoard(DefaultTiles()[:1], rand.New(rand.NewSource(3)))
	want := map[string]theme.Tone{"passing": theme.ToneOK, "queued": theme.ToneInfo, "deploying": theme.ToneWarn}
	for i := 0; i < 100; i++ {
		b.Tick()
		tile := b.Tiles()[0]
		if tile.Tone != want[tile.Value] {
			t.Fatalf("tick %d: %q has tone %s, want %s", i, tile.Value, tile.Tone, want[tile.Value])
		}
	}
}

func TestTileWithoutRuleIsSkipped(t *testing.T) {
	tiles := []Tile{{Label: "Uplink", Value: "1 Gbit", Detail: "fiber", Tone: theme.ToneOK}}
	b := NewBoard(tiles, rand.New(rand.NewSource(1)))
	i, applied := b.Tick()
	if i != 0 || applied {
		t.Errorf("Tick() = (%d, %v), want (0, false)", i, applied)
	}
	if got := b.Tiles(); !slices.Equal(got, tiles) {
		t.Errorf("Tiles() = %+v, want unchanged", got)
	}
}

func TestEmptyBoardTick(t *testing.T) {
	b := NewBoard(nil, rand.New(rand.NewSource(1)))
	if i, applied := b.Tick(); i != -1 || applied {
		t.Errorf("Tick() = (%d, %v), want (-1, false)", i, applied)
	}
}

func TestBoardOnScheduler(t *testing.T) {
	s := sched.New(t0)
	b := NewBoard(DefaultTiles(), rand.New(rand.NewSource(5)))
	h := b.Start(s, DefaultInterval)

	steps := []struct {
		at   time.Time
		want int
	}{
		{t0.Add(4 * time.Second), 0},
		{t0.Add(DefaultInterval), 1},
		{t0.Add(2 * DefaultInterval), 2},
	}
	for _, st := range steps {
		s.Advance(st.at)
		if got := b.Ticks(); got != st.want {
			t.Errorf("Ticks() at %v = %d, want %d", st.at.Sub(t0), got, st.want)
		}
	}

	h.Cancel()
	s.Advance(t0.Add(10 * DefaultInterval))
	if got := b.Ticks(); got != 2 {
		t.Errorf("Ticks() = %d after teardown, want 2", got)
	}
	if got := s.Pending(); got != 0 {
		t.Errorf("Pending() = %d, want 0", got)
	}
}

func TestNewBoardCopiesTiles(t *testing.T) {
	tiles := DefaultTiles()
	b := NewBoard(tiles, rand.New(rand.NewSource(1)))
	tiles[0].Value = "broken"
	if got := b.Tiles()[0].Value; got != "passing" {
		t.Errorf("board tile = %q, want passing", got)
	}
}

func TestLogSeedsAndDiagnostics(t *testing.T) {
	clock := t0
	seeds := []string{"[boot] one", "[ok] two", "[info] three"}
	l := NewLog(
		seeds,
		[]string{"[diag] running system checks..."},
		rand.New(rand.NewSource(1)),
		func() time.Time { return clock },
	)
	if got := l.Lines(); !slices.Equal(got, seeds) {
		t.Errorf("Lines() = %q, want %q", got, seeds)
	}

	e := l.RunDiagnostic()
	if want := "[09:30:00] [diag] running system checks..."; e.String() != want {
		t.Errorf("entry = %q, want %q", e.String(), want)
	}
	if got := l.Lines()[0]; got != e.String() {
		t.Errorf("Lines()[0] = %q, want the newest entry first", got)
	}
	if got := len(l.Entries()); got != 4 {
		t.Errorf("%d entries, want 4", got)
	}
}

func TestLogCap(t *testing.T) {
	clock := t0
	l := NewLog([]string{"a", "b", "c"}, []string{"x"}, rand.New(rand.NewSource(1)), func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	})
	for i := 0; i < 10; i++ {
		l.RunDiagnostic()
	}
	lines := l.Lines()
	if len(lines) != MaxLogEntries {
		t.Fatalf("%d lines, want %d", len(lines), MaxLogEntries)
	}
	if lines[0] != "[09:30:10] x" {
		t.Errorf("newest = %q", lines[0])
	}
	if lines[5] != "[09:30:05] x" {
		t.Errorf("oldest kept = %q", lines[5])
	}
}

func TestLogClear(t *testing.T) {
	l := NewLog([]string{"a"}, nil, rand.New(rand.NewSource(1)), nil)
	l.Clear()
	if got := len(l.Entries()); got != 0 {
		t.Errorf("%d entries after Clear, want 0", got)
	}

	e := l.RunDiagnostic()
	if e.Text == "" {
		t.Error("diagnostic with no templates has empty text")
	}
	if got := len(l.Entries()); got != 1 {
		t.Errorf("%d entries, want 1", got)
	}
}
