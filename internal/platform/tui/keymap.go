package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aklyuchev/torsnake/internal/core"
)

// mapKey translates a terminal key press into a game event. The bool
// result reports whether the key is bound at all. Arrow keys, WASD and
// vi-style HJKL all steer; q and z adjust the speed like the plus and
// minus keys do.
func mapKey(msg tea.KeyMsg) (core.Event, bool) {
	switch msg.String() {
	case "esc", "ctrl+c":
		return core.Event{Kind: core.EventQuit}, true
	case "up", "w", "k":
		return core.TurnEvent(core.DirUp), true
	case "down", "s", "j":
		return core.TurnEvent(core.DirDown), true
	case "left", "a", "h":
		return core.TurnEvent(core.DirLeft), true
	case "right", "d", "l":
		return core.TurnEvent(core.DirRight), true
	case "q", "+", "=":
		return core.SpeedEvent(1), true
	case "z", "-":
		return core.SpeedEvent(-1), true
	case "r":
		return core.Event{Kind: core.EventRestart}, true
	}
	return core.Event{}, false
}
