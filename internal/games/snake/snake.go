package snake

// Snake owns the ordered body cells (head at index 0), the current
// movement direction and the running maximum-length counter used as
// the score. All mutation goes through the methods below; collision
// handling is the game's responsibility, not the snake's.
type Snake struct {
	grid   Grid
	start  Cell
	body   []Cell // Head at index 0, tail at the last index
	dir    Direction
	maxLen int
}

// NewSnake creates a single-cell snake at the grid's canonical start
// cell, moving right.
func NewSnake(grid Grid) *Snake {
	s := &Snake{
		grid:  grid,
		start: grid.Center(),
	}
	s.Reset()
	s.maxLen = 1
	return s
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Len returns the current body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// MaxLen returns the maximum length ever recorded.
func (s *Snake) MaxLen() int {
	return s.maxLen
}

// Body returns a copy of the body cells, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Direction returns the current movement direction.
func (s *Snake) Direction() Direction {
	return s.dir
}

// SetDirection updates the movement direction. A request for the exact
// reverse of the current direction is silently ignored, so the snake
// can never fold back onto its own neck.
func (s *Snake) SetDirection(d Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.dir = d
}

// PeekNextHead computes the cell the head will occupy after the next
// move, without mutating any state. The game tests collisions against
// this cell before committing a move.
func (s *Snake) PeekNextHead() Cell {
	return s.grid.Wrap(s.Head(), s.dir)
}

// Advance slides the snake one cell forward: the new head is inserted
// at the front and the tail cell is removed, preserving length.
// It performs no collision detection; callers must have classified
// PeekNextHead first.
func (s *Snake) Advance() {
	s.body = append([]Cell{s.PeekNextHead()}, s.body...)
	s.body = s.body[:len(s.body)-1]
}

// Grow inserts the next head cell at the front without removing the
// tail, extending the body by one.
func (s *Snake) Grow() {
	s.body = append([]Cell{s.PeekNextHead()}, s.body...)
}

// Shrink removes the tail cell. A length-1 snake is left unchanged.
func (s *Snake) Shrink() {
	if len(s.body) > 1 {
		s.body = s.body[:len(s.body)-1]
	}
}

// Reset collapses the body to the canonical start cell, facing right.
// The maximum-length counter is left untouched so the score survives
// collisions.
func (s *Snake) Reset() {
	s.body = []Cell{s.start}
	s.dir = DirRight
}

// RecordLength updates the maximum-length counter if the current body
// is the longest seen. Called by the game after every length-changing
// operation so that the counter reflects externally observed states.
func (s *Snake) RecordLength() {
	if len(s.body) > s.maxLen {
		s.maxLen = len(s.body)
	}
}

// Occupies reports whether any body cell equals c.
func (s *Snake) Occupies(c Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// HitsBody reports whether c collides with the body excluding the
// current head. The head cell is about to move away, so stepping into
// it is not a collision.
func (s *Snake) HitsBody(c Cell) bool {
	for _, seg := range s.body[1:] {
		if seg == c {
			return true
		}
	}
	return false
}
