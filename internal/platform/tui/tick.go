// Package tui runs game modes in the terminal with Bubble Tea.
// It owns the tick loop, key mapping, score persistence, the menu and
// scoreboard screens, and the Wish SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// ID names the tick loop that scheduled it, so a loop left behind by a
// finished game cannot drive the next one.
type TickMsg struct {
	Time time.Time
	ID   int64
}

var tickLoops atomic.Int64

// nextTickID returns an ID for a new tick loop.
func nextTickID() int64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, id int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
