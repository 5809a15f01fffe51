package snake

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned for grids that have no area or cannot host the
// starting snake and a food cell.
var ErrInvalidGrid = errors.New("snake: invalid grid")

// Cell is a single addressable tile of the grid.
type Cell struct {
	X, Y int
}

// Step returns the neighbouring cell in the given heading.
func (c Cell) Step(h Heading) Cell {
	dx, dy := h.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is the fixed coordinate space of a session. It never changes after
// construction.
type Grid struct {
	width  int
	height int
}

// NewGrid creates a grid of the given dimensions.
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d has no area", ErrInvalidGrid, width, height)
	}
	return Grid{width: width, height: height}, nil
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// Area returns the total number of cells.
func (g Grid) Area() int {
	return g.width * g.height
}

// Contains reports whether c lies inside [0,width) x [0,height).
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Cells returns every cell in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, g.Area())
	for y := range g.height {
		for x := range g.width {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}
