package status

import (
	"math/rand"
	"time"
)

// MaxLogEntries caps the diagnostics log.
const MaxLogEntries = 6

// Entry is one log line. A zero At marks a seed line without timestamp.
type Entry struct {
	At   time.Time
	Text string
}

// String renders the entry as shown on the page.
func (e Entry) String() string {
	if e.At.IsZero() {
		return e.Text
	}
	return "[" + e.At.Format("15:04:05") + "] " + e.Text
}

// Log is a most-recent-first list of diagnostic lines.
type Log struct {
	entries   []Entry
	templates []string
	rng       *rand.Rand
	now       func() time.Time
}

// NewLog creates a log holding seeds (newest first) that draws new lines
// from templates. now supplies timestamps; nil uses time.Now.
func NewLog(seeds, templates []string, rng *rand.Rand, now func() time.Time) *Log {
	if now == nil {
		now = time.Now
	}
	l := &Log{templates: append([]string(nil), templates...), rng: rng, now: now}
	for _, s := range seeds {
		l.entries = append(l.entries, Entry{Text: s})
	}
	if len(l.entries) > MaxLogEntries {
		l.entries = l.entries[:MaxLogEntries]
	}
	return l
}

// RunDiagnostic prepends a random template stamped with the current time
// and drops entries beyond the cap. Returns the new entry.
func (l *Log) RunDiagnostic() Entry {
	text := "[diag] no checks configured"
	if len(l.templates) > 0 {
		text = l.templates[l.rng.Intn(len(l.templates))]
	}
	e := Entry{At: l.now(), Text: text}
	l.entries = append([]Entry{e}, l.entries...)
	if len(l.entries) > MaxLogEntries {
		l.entries = l.entries[:MaxLogEntries]
	}
	return e
}

// Clear removes every entry.
func (l *Log) Clear() {
	l.entries = nil
}

// Entries returns a copy, newest first.
func (l *Log) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Lines returns the rendered entries, newest first.
func (l *Log) Lines() []string {
	out := make([]string, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.String()
	}
	return out
}
