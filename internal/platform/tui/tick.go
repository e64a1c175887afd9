// Package tui provides the Bubble Tea integration for the arcade.
// It handles the terminal UI loop, input mapping, and the speed-driven
// tick governor.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick message
// after the speed-derived pause: speed is ticks per second, so a higher
// speed means a shorter pause.
func tickCmd(speed int) tea.Cmd {
	if speed < 1 {
		speed = 1
	}
	interval := time.Second / time.Duration(speed)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
