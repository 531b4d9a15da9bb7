// Package sched provides the single cooperative scheduler shared by every
// animated or periodic part of ttyfolio: the particle engine's per-frame
// step, the rain renderer's redraw interval and the status board tick.
//
// The scheduler never starts goroutines or timers of its own. The owner
// (the bubbletea model) calls Advance from its Update loop on every frame
// tick, and all task callbacks run synchronously inside that call. Every
// registration returns a Handle, and cancelling a handle guarantees its
// callback is never invoked again.
package sched

import (
	"time"
)

// Task is a scheduled callback. now is the time passed to Advance.
type Task func(now time.Time)

type kind int

const (
	kindFrame kind = iota
	kindInterval
)

type task struct {
	id       uint64
	name     string
	kind     kind
	interval time.Duration
	due      time.Time
	fn       Task
}

// Scheduler owns the set of pending tasks. It is not safe for concurrent
// use; it belongs to whichever goroutine drives Advance.
type Scheduler struct {
	now    time.Time
	nextID uint64
	tasks  map[uint64]*task
	order  []uint64
}

// New creates a scheduler whose clock starts at start.
func New(start time.Time) *Scheduler {
	return &Scheduler{
		now:   start,
		tasks: make(map[uint64]*task),
	}
}

// Now returns the time of the last Advance (or the start time).
func (s *Scheduler) Now() time.Time {
	return s.now
}

// RequestFrame registers fn to run once on the next Advance. Callers that
// want a loop request another frame from inside fn.
func (s *Scheduler) RequestFrame(name string, fn Task) *Handle {
	return s.add(&task{name: name, kind: kindFrame, fn: fn})
}

// Every registers fn to run each time d has elapsed. Non-positive
// intervals are clamped to one nanosecond so the task still advances.
func (s *Scheduler) Every(name string, d time.Duration, fn Task) *Handle {
	if d <= 0 {
		d = time.Nanosecond
	}
	return s.add(&task{
		name:     name,
		kind:     kindInterval,
		interval: d,
		due:      s.now.Add(d),
		fn:       fn,
	})
}

func (s *Scheduler) add(t *task) *Handle {
	s.nextID++
	t.id = s.nextID
	s.tasks[t.id] = t
	s.order = append(s.order, t.id)
	return &Handle{id: t.id, name: t.name, s: s}
}

// Advance moves the clock to now and runs every task that is due, in
// registration order. Frame tasks are due once; interval tasks run at
// most once per call. Tasks registered by callbacks during this call wait
// for the next Advance. Returns the number of callbacks invoked.
func (s *Scheduler) Advance(now time.Time) int {
	if now.After(s.now) {
		s.now = now
	}

	snapshot := make([]uint64, len(s.order))
	copy(snapshot, s.order)

	ran := 0
	for _, id := range snapshot {
		t, ok := s.tasks[id]
		if !ok {
			// Cancelled by an earlier callback in this pass.
			continue
		}
		switch t.kind {
		case kindFrame:
			s.remove(id)
			t.fn(s.now)
			ran++
		case kindInterval:
			if s.now.Before(t.due) {
				continue
			}
			t.due = t.due.Add(t.interval)
			if !t.due.After(s.now) {
				// Fell more than one interval behind; resync instead of bursting.
				t.due = s.now.Add(t.interval)
			}
			t.fn(s.now)
			ran++
		}
	}
	s.compact()
	return ran
}

// Pending returns the number of live tasks.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Names returns the names of live tasks in registration order.
func (s *Scheduler) Names() []string {
	names := make([]string, 0, len(s.tasks))
	for _, id := range s.order {
		if t, ok := s.tasks[id]; ok {
			names = append(names, t.name)
		}
	}
	return names
}

// CancelAll withdraws every pending task. Used on teardown.
func (s *Scheduler) CancelAll() {
	s.tasks = make(map[uint64]*task)
	s.order = nil
}

func (s *Scheduler) remove(id uint64) {
	delete(s.tasks, id)
}

// compact drops cancelled ids from the order slice.
func (s *Scheduler) compact() {
	if len(s.order) == len(s.tasks) {
		return
	}
	live := s.order[:0]
	for _, id := range s.order {
		if _, ok := s.tasks[id]; ok {
			live = append(live, id)
		}
	}
	s.order = live
}

// Handle identifies one registered task.
type Handle struct {
	id   uint64
	name string
	s    *Scheduler
}

// Name returns the name the task was registered with.
func (h *Handle) Name() string {
	if h == nil {
		return ""
	}
	return h.name
}

// Active reports whether the task is still scheduled. A frame task stops
// being active once it has run.
func (h *Handle) Active() bool {
	if h == nil || h.s == nil {
		return false
	}
	_, ok := h.s.tasks[h.id]
	return ok
}

// Cancel withdraws the task. It is safe to call on a nil handle, more than
// once, or from inside any callback. Returns true if the task was live.
func (h *Handle) Cancel() bool {
	if !h.Active() {
		return false
	}
	h.s.remove(h.id)
	return true
}
