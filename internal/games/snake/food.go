package snake

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned by a Placer when every cell is occupied.
var ErrBoardFull = errors.New("snake: no free cell for food")

// DefaultPlacementBudget is the number of random draws made before
// RejectionPlacer falls back to scanning the free cells.
const DefaultPlacementBudget = 64

// Placer picks a food cell that the snake does not occupy.
type Placer interface {
	Place(grid Grid, body *Snake, rng *rand.Rand) (Cell, error)
}

// RejectionPlacer draws uniformly random cells until one is free. After
// Budget rejected draws it enumerates the free cells and picks one of those,
// so placement always terminates.
type RejectionPlacer struct {
	Budget int
}

// Place implements Placer.
func (p RejectionPlacer) Place(grid Grid, body *Snake, rng *rand.Rand) (Cell, error) {
	if body.Len() >= grid.Area() {
		return Cell{}, ErrBoardFull
	}

	for range p.Budget {
		c := Cell{X: rng.Intn(grid.Width()), Y: rng.Intn(grid.Height())}
		if !body.Occupies(c) {
			return c, nil
		}
	}

	free := freeCells(grid, body)
	if len(free) == 0 {
		return Cell{}, ErrBoardFull
	}
	return free[rng.Intn(len(free))], nil
}

// freeCells lists every grid cell not covered by the body, row-major.
func freeCells(grid Grid, body *Snake) []Cell {
	occupied := make(map[Cell]struct{}, body.Len())
	for _, seg := range body.body {
		occupied[seg] = struct{}{}
	}

	free := make([]Cell, 0, grid.Area()-len(occupied))
	for _, c := range grid.Cells() {
		if _, ok := occupied[c]; !ok {
			free = append(free, c)
		}
	}
	return free
}
