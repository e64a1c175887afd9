// Package snake implements the toroidal-grid snake simulation: a
// player-controlled snake slides across a wrap-around board, grows on
// apples, loses tail segments to poison and collapses back to a single
// cell when it runs into its own body.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/aklyuchev/torsnake/internal/config"
	"github.com/aklyuchev/torsnake/internal/core"
)

const hudHeight = 2 // Caption line plus separator

// Game ties grid, snake and items together and advances them one tick
// at a time. It implements core.Game.
type Game struct {
	cfg  config.SnakeConfig
	grid Grid
	rng  *rand.Rand
	tick uint64

	snake  *Snake
	apple  *Item
	poison *Item
	speed  int

	// Parsed palette, fixed at construction
	snakeColor  core.Color
	appleColor  core.Color
	poisonColor core.Color
	borderColor core.Color

	// Screen placement
	screenW  int
	screenH  int
	offsetX  int
	offsetY  int
	tooSmall bool

	boardFull bool
}

// New creates a game from an immutable configuration. The config must
// have passed Validate; color names fall back to defaults otherwise.
func New(cfg config.SnakeConfig) *Game {
	g := &Game{
		cfg:  cfg,
		grid: Grid{Width: cfg.Grid.Width, Height: cfg.Grid.Height},
	}
	g.snakeColor = mustColor(cfg.Colors.Snake, core.ColorBrightBlue)
	g.appleColor = mustColor(cfg.Colors.Apple, core.ColorBrightGreen)
	g.poisonColor = mustColor(cfg.Colors.Poison, core.ColorBrightRed)
	g.borderColor = mustColor(cfg.Colors.Border, core.ColorCyan)
	return g
}

func mustColor(name string, fallback core.Color) core.Color {
	c, err := core.ParseColor(name)
	if err != nil {
		return fallback
	}
	return c
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake on a Torus"
}

// Reset initializes/restarts the run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.speed = g.cfg.Speed.Initial
	g.boardFull = false

	g.snake = NewSnake(g.grid)
	g.apple = NewItem(RoleApple, g.appleColor)
	g.poison = NewItem(RolePoison, g.poisonColor)

	// Initial placement: the board is at least 4x4, so both picks
	// succeed with a single-cell snake. The apple goes first; the
	// poison then avoids it.
	if err := g.apple.Relocate(g.grid, g.rng, g.occupied()); err != nil {
		g.boardFull = true
	}
	if err := g.poison.Relocate(g.grid, g.rng, g.occupied(g.apple.Pos())); err != nil {
		g.boardFull = true
	}

	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize recomputes board placement for new screen dimensions.
// The simulation itself is untouched.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	requiredW := g.grid.Width + 2
	requiredH := g.grid.Height + 2 + hudHeight
	if w < requiredW || h < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.offsetX = (w - g.grid.Width) / 2
	g.offsetY = hudHeight + 1 + (h-hudHeight-g.grid.Height-2)/2
}

// occupied builds the exclusion set for a relocation: every snake cell
// plus the given extra cells (the other item, typically).
func (g *Game) occupied(extra ...Cell) map[Cell]bool {
	set := make(map[Cell]bool, g.snake.Len()+len(extra))
	for _, c := range g.snake.Body() {
		set[c] = true
	}
	for _, c := range extra {
		set[c] = true
	}
	return set
}

// Step advances the game by one tick: drain pending input in arrival
// order, then move the snake and resolve what its next head cell hits.
func (g *Game) Step(events []core.Event) core.StepResult {
	g.tick++

	for _, ev := range events {
		switch ev.Kind {
		case core.EventTurn:
			g.snake.SetDirection(directionFor(ev.Dir))
		case core.EventSpeed:
			g.speed = core.Clamp(g.speed+ev.Delta*g.cfg.Speed.Delta, g.cfg.Speed.Min, g.cfg.Speed.Max)
		case core.EventRestart:
			if g.boardFull {
				g.Reset(core.RuntimeConfig{
					ScreenW: g.screenW,
					ScreenH: g.screenH,
					Seed:    g.rng.Int63(),
				})
				return core.StepResult{State: g.State()}
			}
		}
	}

	if g.boardFull || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	next := g.snake.PeekNextHead()

	var relocateErr error
	switch {
	case g.snake.HitsBody(next):
		// Reset cycle: collapse to the start cell and rehome both items.
		g.snake.Reset()
		g.snake.RecordLength()
		relocateErr = g.apple.Relocate(g.grid, g.rng, g.occupied(g.poison.Pos()))
		if relocateErr == nil {
			relocateErr = g.poison.Relocate(g.grid, g.rng, g.occupied(g.apple.Pos()))
		}

	case next == g.apple.Pos():
		g.snake.Grow()
		g.snake.RecordLength()
		relocateErr = g.apple.Relocate(g.grid, g.rng, g.occupied(g.poison.Pos()))

	case next == g.poison.Pos():
		// The head swallows the poison cell and the body pays one tail
		// segment on top of the slide. A length-1 snake only slides.
		g.snake.Advance()
		g.snake.Shrink()
		relocateErr = g.poison.Relocate(g.grid, g.rng, g.occupied(g.apple.Pos()))

	default:
		g.snake.Advance()
	}

	// A board with no free cell left means the snake has filled it:
	// the run ends here rather than crashing the relocation.
	if relocateErr != nil {
		g.boardFull = true
	}

	return core.StepResult{State: g.State()}
}

// directionFor maps a platform direction request to a movement vector.
func directionFor(d core.Dir) Direction {
	switch d {
	case core.DirUp:
		return DirUp
	case core.DirDown:
		return DirDown
	case core.DirLeft:
		return DirLeft
	default:
		return DirRight
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snake.MaxLen(),
		Speed:    g.speed,
		GameOver: g.boardFull,
	}
}

// Render draws the game to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Border around the board
	dst.DrawBox(core.NewRect(g.offsetX-1, g.offsetY-1, g.grid.Width+2, g.grid.Height+2), g.borderColor)

	// Items
	g.drawCell(dst, g.apple.Pos(), '*', g.apple.Color())
	g.drawCell(dst, g.poison.Pos(), 'x', g.poison.Color())

	// Snake, head last so it wins the cell after a reset collapse
	for i := g.snake.Len() - 1; i >= 0; i-- {
		ch := 'o'
		if i == 0 {
			ch = 'O'
		}
		g.drawCell(dst, g.snake.Body()[i], ch, g.snakeColor)
	}

	if g.boardFull {
		g.renderOverlay(dst, "Board filled!", fmt.Sprintf("Max length: %d, press R to restart", g.snake.MaxLen()))
	}
}

// renderHUD draws the caption line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Speed: %d  Max length: %d", g.speed, g.snake.MaxLen())
	dst.DrawText(0, 0, hud)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// drawCell draws a single board cell at its screen position.
func (g *Game) drawCell(dst *core.Screen, c Cell, r rune, col core.Color) {
	dst.SetColored(g.offsetX+c.X, g.offsetY+c.Y, r, col)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorDefault)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
