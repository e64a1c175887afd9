package snake

import (
	"errors"
	"math/rand"
)

// ErrNoFreeCell is returned when the excluded set covers the whole board.
// The only way to get here in play is a snake that has filled the grid.
var ErrNoFreeCell = errors.New("snake: no free cell left on the board")

// Rejection-sampling attempts before falling back to enumerating the
// free set. Keeps the common case allocation-free while the exact path
// guarantees termination when the board is nearly full.
const pickAttempts = 16

// PickFree returns a uniformly random cell of the grid that is not in
// excluded. It does not mutate excluded. Returns ErrNoFreeCell when no
// cell remains.
func (g Grid) PickFree(rng *rand.Rand, excluded map[Cell]bool) (Cell, error) {
	// Fast path: sample and reject. Only worth trying while the free
	// fraction is large enough that a hit is likely.
	if len(excluded)*2 < g.CellCount() {
		for i := 0; i < pickAttempts; i++ {
			c := Cell{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
			if !excluded[c] {
				return c, nil
			}
		}
	}

	free := make([]Cell, 0, g.CellCount()-len(excluded))
	for _, c := range g.Cells() {
		if !excluded[c] {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return Cell{}, ErrNoFreeCell
	}
	return free[rng.Intn(len(free))], nil
}
