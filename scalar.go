// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package life

// ScalarStrategy recomputes every cell independently from its neighbor
// count. Results go to a separate buffer which replaces the grid's cells
// once the whole generation is done, so no count ever sees an updated
// neighbor.
type ScalarStrategy struct {
	next []uint8
}

// NewScalarStrategy creates a scalar update strategy.
func NewScalarStrategy() *ScalarStrategy {
	return &ScalarStrategy{}
}

// Name implements Strategy.
func (s *ScalarStrategy) Name() string { return StrategyScalar }

// Step implements Strategy.
func (s *ScalarStrategy) Step(g *Grid) {
	s.next = ensureBuffer(s.next, len(g.cells))
	stepRows(g, s.next, 0, g.size)
	g.cells, s.next = s.next, g.cells
}

// stepRows writes generation T+1 of rows [from, to) into next.
func stepRows(g *Grid, next []uint8, from, to int) {
	n := g.size
	for r := from; r < to; r++ {
		for c := range n {
			i := r*n + c
			next[i] = NextState(g.cells[i], CountNeighbors(g, r, c))
		}
	}
}

// ensureBuffer returns buf if it holds exactly n cells, or a fresh buffer.
func ensureBuffer(buf []uint8, n int) []uint8 {
	if len(buf) != n {
		return make([]uint8, n)
	}
	return buf
}
