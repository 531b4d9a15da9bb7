// Package history is the console's recall buffer: every submitted line in
// order plus a cursor for stepping back and forth through them.
package history

import (
	"errors"
	"strings"
)

// ErrEmptyLine is returned by Append for blank input.
var ErrEmptyLine = errors.New("history: empty line")

// unset is the cursor value when the user is not navigating.
const unset = -1

// Buffer is an append-only list of submitted lines with a recall cursor.
type Buffer struct {
	entries []string
	cursor  int
}

// New creates a buffer seeded with the given lines. Blank seeds are
// skipped.
func New(seed ...string) *Buffer {
	b := &Buffer{cursor: unset}
	for _, s := range seed {
		_ = b.Append(s)
	}
	return b
}

// Append stores the trimmed line and resets the cursor.
func (b *Buffer) Append(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return ErrEmptyLine
	}
	b.entries = append(b.entries, line)
	b.cursor = unset
	return nil
}

// Previous steps the cursor toward older entries, saturating at the oldest.
// ok is false only when the buffer is empty.
func (b *Buffer) Previous() (line string, ok bool) {
	if len(b.entries) == 0 {
		return "", false
	}
	if b.cursor == unset {
		b.cursor = len(b.entries) - 1
	} else if b.cursor > 0 {
		b.cursor--
	}
	return b.entries[b.cursor], true
}

// Next steps the cursor toward newer entries. Stepping past the newest
// entry unsets the cursor and yields "" so the caller clears its input.
// ok is false when the cursor was already unset and nothing changed.
func (b *Buffer) Next() (line string, ok bool) {
	if b.cursor == unset {
		return "", false
	}
	b.cursor++
	if b.cursor >= len(b.entries) {
		b.cursor = unset
		return "", true
	}
	return b.entries[b.cursor], true
}

// Cursor returns the recall position and whether it is set.
func (b *Buffer) Cursor() (int, bool) {
	return b.cursor, b.cursor != unset
}

// Len returns the number of entries.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Entries returns a copy of the entries, oldest first.
func (b *Buffer) Entries() []string {
	out := make([]string, len(b.entries))
	copy(out, b.entries)
	return out
}

// Reset unsets the cursor without touching the entries.
func (b *Buffer) Reset() {
	b.cursor = unset
}
