// Package tui runs the runner in a terminal with Bubble Tea.
// It owns the wall clock, turns key presses into intents, and draws frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// ticksFor converts a wall-clock span to a whole number of ticks, at least one.
func ticksFor(d time.Duration, tickRate int) int {
	return max(1, int(d/tickInterval(tickRate)))
}
