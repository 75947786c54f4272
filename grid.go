// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package life

import (
	"fmt"
	"strings"
)

// Cell states.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Grid is a square, toroidal field of cells.
//
// Cells are stored row-major in a single slice; every value is Dead or Alive.
// The size is fixed at construction. Grid itself does no wraparound: the
// accessors reject coordinates outside [0, Size()), and wrapping is left to
// the neighbor counting code.
//
// Grid is not safe for concurrent use. See Simulation for a guarded owner.
type Grid struct {
	size  int
	cells []uint8
}

// NewGrid creates an all-dead size×size grid.
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: grid size %d, must be positive", ErrInvalidConfiguration, size)
	}
	return &Grid{
		size:  size,
		cells: make([]uint8, size*size),
	}, nil
}

// Size returns the number of rows (and columns) of the grid.
func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) check(row, col int) error {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return &IndexError{Row: row, Col: col, Size: g.size}
	}
	return nil
}

// Cell returns the state of the cell at (row, col).
func (g *Grid) Cell(row, col int) (uint8, error) {
	if err := g.check(row, col); err != nil {
		return Dead, err
	}
	return g.cells[row*g.size+col], nil
}

// SetCell sets the state of the cell at (row, col) to Dead or Alive.
func (g *Grid) SetCell(row, col int, v uint8) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	if v > Alive {
		return fmt.Errorf("%w: got %d", ErrInvalidCellState, v)
	}
	g.cells[row*g.size+col] = v
	return nil
}

// Toggle flips the cell at (row, col) and returns its new state.
func (g *Grid) Toggle(row, col int) (uint8, error) {
	if err := g.check(row, col); err != nil {
		return Dead, err
	}
	i := row*g.size + col
	g.cells[i] ^= Alive
	return g.cells[i], nil
}

// Row returns row r of the grid. The slice aliases the grid's storage and
// must not be modified or retained across updates.
func (g *Grid) Row(r int) []uint8 {
	return g.cells[r*g.size : (r+1)*g.size]
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		n += int(c)
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{size: g.size, cells: make([]uint8, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if g.size != o.size {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// String renders the grid as plaintext rows of '.' (dead) and 'O' (alive).
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for r := range g.size {
		for _, c := range g.Row(r) {
			if c == Alive {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
