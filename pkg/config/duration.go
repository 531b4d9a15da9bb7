// Package config loads the ttyfolio TOML configuration: search paths,
// defaults, environment overrides, validation and palette file watching.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration is a time.Duration that decodes from TOML strings. Go duration
// syntax ("16ms", "4.5s") is accepted, and so is a bare integer, read as
// milliseconds ("33").
type Duration struct {
	time.Duration
}

// Ms is shorthand for a Duration of n milliseconds.
func Ms(n int) Duration {
	return Duration{time.Duration(n) * time.Millisecond}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		d.Duration = 0
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return fmt.Errorf("negative duration %q not allowed", s)
		}
		d.Duration = time.Duration(n) * time.Millisecond
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Or returns d, or def when d is not positive.
func (d Duration) Or(def time.Duration) time.Duration {
	if d.Duration <= 0 {
		return def
	}
	return d.Duration
}
