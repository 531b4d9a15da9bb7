// Package app is the bubbletea root of ttyfolio. It owns the scheduler
// pump, the effect surfaces (rain and burst), focus navigation between
// page panels and the pinned console, and the composition of the final
// frame.
package app

import (
	"time"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/console"
)

// TickEvent is sent by the frame ticker. Every scheduled task (particle
// frames, rain, tile drift, typewriter) advances from it.
type TickEvent struct {
	Time time.Time
}

// DataUpdateEvent carries the result of a background fetch back into the
// update loop. Receivers type-assert Data based on Source.
type DataUpdateEvent struct {
	Source    string
	Data      any
	Err       error
	Timestamp time.Time
}

// CommandEvent carries a console result after the store has applied its
// theme, rain and clear effects. The model still owes the burst.
type CommandEvent struct {
	Result console.Result
}

// LocaleChangeEvent switches to the other content table.
type LocaleChangeEvent struct{}

// PaletteReloadEvent reports that the palette override file changed on
// disk.
type PaletteReloadEvent struct {
	Path string
}

// BurstEvent fires a particle burst at the screen center.
type BurstEvent struct{}
