// Package world holds the per-cell terrain records of a generated map.
package world

import (
	"errors"
	"fmt"
	"math"

	"mad-terrain/internal/core"
)

// ErrInvalidSize reports a zero, negative or overflowing grid dimension.
var ErrInvalidSize = errors.New("invalid grid size")

// Grid stores terrain cells in row-major order. Its length never changes
// after construction.
type Grid struct {
	W, H  int
	cells []Cell
}

// New allocates a grid of w*h default cells.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if w > math.MaxInt/h {
		return nil, fmt.Errorf("%w: %dx%d overflows cell index", ErrInvalidSize, w, h)
	}
	cells := make([]Cell, w*h)
	def := DefaultCell()
	for i := range cells {
		cells[i] = def
	}
	return &Grid{W: w, H: h, cells: cells}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.W, H: g.H} }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cells exposes the backing slice for read access by collaborators.
func (g *Grid) Cells() []Cell { return g.cells }

// TileAt returns the cell at (x, y), or false when out of bounds.
func (g *Grid) TileAt(x, y int) (*Cell, bool) {
	if !g.Size().Contains(x, y) {
		return nil, false
	}
	return &g.cells[core.CoordsToIndex(x, y, g.W)], true
}

// At returns the cell at a linear index, or false when out of range.
func (g *Grid) At(index int) (*Cell, bool) {
	if index < 0 || index >= len(g.cells) {
		return nil, false
	}
	return &g.cells[index], true
}

// ForEachCell visits every cell exactly once in row-major order. Iteration
// stops at the first error returned by fn.
func (g *Grid) ForEachCell(fn func(index int, c *Cell) error) error {
	for i := range g.cells {
		if err := fn(i, &g.cells[i]); err != nil {
			return err
		}
	}
	return nil
}
