package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickCmd returns a Cmd that sends a TickEvent after d.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// DataFetchCmd runs fetchFn off the update loop and delivers the result as
// a DataUpdateEvent. On error Data is nil.
func DataFetchCmd(source string, fetchFn func() (any, error)) tea.Cmd {
	return func() tea.Msg {
		data, err := fetchFn()
		if err != nil {
			data = nil
		}
		return DataUpdateEvent{
			Source:    source,
			Data:      data,
			Err:       err,
			Timestamp: time.Now(),
		}
	}
}

// Emit wraps msg in a Cmd.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
