package snake

import (
	"math/rand"

	"github.com/aklyuchev/torsnake/internal/core"
)

// Role tags what eating an item does to the snake.
type Role int

const (
	RoleApple  Role = iota // grows the snake by one segment
	RolePoison             // costs the snake a tail segment
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleApple:
		return "apple"
	case RolePoison:
		return "poison"
	default:
		return "unknown"
	}
}

// Item is a single consumable cell on the board. Both item kinds share
// this one type, distinguished by role and display color only.
type Item struct {
	role  Role
	color core.Color
	pos   Cell
}

// NewItem creates an item with the given role and color. The position
// is undefined until the first Relocate.
func NewItem(role Role, color core.Color) *Item {
	return &Item{role: role, color: color}
}

// Pos returns the item's current cell.
func (it *Item) Pos() Cell {
	return it.pos
}

// Role returns the item's role tag.
func (it *Item) Role() Role {
	return it.role
}

// Color returns the item's display color.
func (it *Item) Color() core.Color {
	return it.color
}

// Relocate moves the item to a uniformly random cell outside excluded.
// Callers pass the union of the snake's body and the other item's cell,
// which keeps the two items and the snake pairwise disjoint. The item
// keeps its old position when no free cell remains.
func (it *Item) Relocate(g Grid, rng *rand.Rand, excluded map[Cell]bool) error {
	c, err := g.PickFree(rng, excluded)
	if err != nil {
		return err
	}
	it.pos = c
	return nil
}
