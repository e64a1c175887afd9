package snake

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Speed     int
	SnakeLen  int
	MaxLen    int
	HeadX     int
	HeadY     int
	Dir       Direction
	AppleX    int
	AppleY    int
	PoisonX   int
	PoisonY   int
	BoardFull bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	return Snapshot{
		Tick:      g.tick,
		Speed:     g.speed,
		SnakeLen:  g.snake.Len(),
		MaxLen:    g.snake.MaxLen(),
		HeadX:     head.X,
		HeadY:     head.Y,
		Dir:       g.snake.Direction(),
		AppleX:    g.apple.Pos().X,
		AppleY:    g.apple.Pos().Y,
		PoisonX:   g.poison.Pos().X,
		PoisonY:   g.poison.Pos().Y,
		BoardFull: g.boardFull,
	}
}
