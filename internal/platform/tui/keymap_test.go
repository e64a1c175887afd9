package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aklyuchev/torsnake/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{}
}

func TestMapKeyTurns(t *testing.T) {
	tests := []struct {
		key  string
		want core.Dir
	}{
		{"up", core.DirUp},
		{"w", core.DirUp},
		{"k", core.DirUp},
		{"down", core.DirDown},
		{"s", core.DirDown},
		{"j", core.DirDown},
		{"left", core.DirLeft},
		{"a", core.DirLeft},
		{"h", core.DirLeft},
		{"right", core.DirRight},
		{"d", core.DirRight},
		{"l", core.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			ev, ok := mapKey(keyMsg(tt.key))
			if !ok {
				t.Fatalf("mapKey(%q) not bound", tt.key)
			}
			if ev.Kind != core.EventTurn || ev.Dir != tt.want {
				t.Errorf("mapKey(%q) = %+v, expected turn %v", tt.key, ev, tt.want)
			}
		})
	}
}

func TestMapKeySpeedAndControl(t *testing.T) {
	tests := []struct {
		key       string
		wantKind  core.EventKind
		wantDelta int
	}{
		{"q", core.EventSpeed, 1},
		{"+", core.EventSpeed, 1},
		{"z", core.EventSpeed, -1},
		{"-", core.EventSpeed, -1},
		{"r", core.EventRestart, 0},
		{"esc", core.EventQuit, 0},
		{"ctrl+c", core.EventQuit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			ev, ok := mapKey(keyMsg(tt.key))
			if !ok {
				t.Fatalf("mapKey(%q) not bound", tt.key)
			}
			if ev.Kind != tt.wantKind || ev.Delta != tt.wantDelta {
				t.Errorf("mapKey(%q) = %+v, expected kind %v delta %d", tt.key, ev, tt.wantKind, tt.wantDelta)
			}
		})
	}
}

func TestMapKeyUnbound(t *testing.T) {
	for _, key := range []string{"x", "p", "1"} {
		if _, ok := mapKey(keyMsg(key)); ok {
			t.Errorf("mapKey(%q) unexpectedly bound", key)
		}
	}
}

func TestRenderScreenLineCount(t *testing.T) {
	s := core.NewScreen(10, 4)
	s.DrawText(0, 0, "hello")
	s.SetColored(2, 1, 'O', core.ColorBrightBlue)

	out := RenderScreen(s)

	lines := 1
	for _, r := range out {
		if r == '\n' {
			lines++
		}
	}
	if lines != 4 {
		t.Errorf("RenderScreen() produced %d lines, expected 4", lines)
	}
}
