// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package life

// Wrap maps any index onto [0, n) with toroidal identification, so that
// -1 becomes n-1 and n becomes 0. Negative inputs are handled explicitly.
func Wrap(i, n int) int {
	return ((i % n) + n) % n
}

// CountNeighbors returns the number of live cells among the eight cells
// surrounding (row, col), wrapping both axes independently.
//
// On a 1×1 grid every offset resolves to the cell itself, so a live cell
// sees eight live neighbors.
func CountNeighbors(g *Grid, row, col int) int {
	n := g.size
	up, down := Wrap(row-1, n), Wrap(row+1, n)
	left, right := Wrap(col-1, n), Wrap(col+1, n)

	above := g.cells[up*n : (up+1)*n]
	same := g.cells[row*n : (row+1)*n]
	below := g.cells[down*n : (down+1)*n]

	return int(above[left]) + int(above[col]) + int(above[right]) +
		int(same[left]) + int(same[right]) +
		int(below[left]) + int(below[col]) + int(below[right])
}
