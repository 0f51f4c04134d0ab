// Package tui provides the Bubble Tea integration for the autoplayer:
// the live watch view, the stats browser, and the Wish SSH server that
// serves the watch view to remote terminals.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the watch view to play the next move.
type TickMsg time.Time

// tickCmd schedules the next tick at the given speed in moves per second.
func tickCmd(speed int) tea.Cmd {
	if speed < 1 {
		speed = 1
	}
	interval := time.Second / time.Duration(speed)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
