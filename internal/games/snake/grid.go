package snake

// Cell is one square of the board, identified by column and row.
type Cell struct {
	X, Y int
}

// Direction is one of the four unit movement vectors.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit vector for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Grid defines the toroidal coordinate space of the board.
// Valid cells have 0 <= X < Width and 0 <= Y < Height; movement past an
// edge re-enters from the opposite edge.
type Grid struct {
	Width  int
	Height int
}

// CellCount returns the total number of cells on the board.
func (g Grid) CellCount() int {
	return g.Width * g.Height
}

// Contains reports whether the cell lies on the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Center returns the canonical snake start cell.
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Cells enumerates every valid cell on the board.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.CellCount())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// Wrap returns the cell one step from c in direction d, with toroidal
// wrap-around. The result is always a valid cell of the grid.
func (g Grid) Wrap(c Cell, d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{
		X: ((c.X+dx)%g.Width + g.Width) % g.Width,
		Y: ((c.Y+dy)%g.Height + g.Height) % g.Height,
	}
}
