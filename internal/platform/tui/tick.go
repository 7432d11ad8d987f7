// Package tui provides the Bubble Tea frontend: the terminal tick loop, key
// and mouse mapping, the game picker, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
// Ticks keep coming while a round is paused so overlays stay live.
func tickCmd(tickRate int) tea.Cmd {
	interval := TickInterval(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TickInterval converts a tick rate to the delay between ticks.
// Non-positive rates fall back to 60 ticks per second.
func TickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
