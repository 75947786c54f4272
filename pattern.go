// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package life

import (
	"fmt"
	"strings"
)

// Pattern is a rectangular arrangement of live cells, stored as row/column
// offsets from its top-left corner.
type Pattern struct {
	Height, Width int
	Live          [][2]int
}

// Well-known patterns.
var (
	// Block is a 2×2 still life.
	Block = MustParsePattern("OO\nOO")

	// Blinker is a horizontal period-2 oscillator.
	Blinker = MustParsePattern("OOO")

	// Glider travels one cell diagonally every four generations.
	Glider = MustParsePattern(".O.\n..O\nOOO")
)

// ParsePattern reads a plaintext pattern: one line per row, 'O' or '*' for
// live cells, '.' for dead cells. Lines starting with '!' are comments.
// Short rows are padded with dead cells.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	row := 0
	for line := range strings.Lines(s) {
		line = strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for col, ch := range []byte(line) {
			switch ch {
			case 'O', '*':
				p.Live = append(p.Live, [2]int{row, col})
			case '.':
			default:
				return Pattern{}, fmt.Errorf("%w: unexpected %q at row %d, column %d", ErrInvalidPattern, ch, row, col)
			}
		}
		p.Width = max(p.Width, len(line))
		row++
	}
	p.Height = row
	if p.Height == 0 || p.Width == 0 {
		return Pattern{}, fmt.Errorf("%w: empty", ErrInvalidPattern)
	}
	return p, nil
}

// MustParsePattern is like ParsePattern but panics on error.
func MustParsePattern(s string) Pattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Place sets the live cells of p with its top-left corner at (row, col).
// Cells falling off an edge wrap around to the opposite edge. Dead cells of
// the pattern leave the grid untouched.
func (g *Grid) Place(p Pattern, row, col int) {
	for _, rc := range p.Live {
		r := Wrap(row+rc[0], g.size)
		c := Wrap(col+rc[1], g.size)
		g.cells[r*g.size+c] = Alive
	}
}
