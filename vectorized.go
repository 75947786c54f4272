// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package life

// VectorizedStrategy counts neighbors for the whole grid at once.
//
// For each of the eight neighbor directions it adds a shifted copy of the
// grid into a count buffer. Along each axis a shift splits into a bulk span
// (destination indices whose neighbor does not cross the edge) and a single
// wrapped index, so every direction decomposes into at most four blocks:
//
//	bulk × bulk   interior pass
//	bulk × wrap   border column pass
//	wrap × bulk   border row pass
//	wrap × wrap   corner pass (one cell, partner is the opposite corner)
//
// Once the buffer is complete the rule is applied in place as two
// whole-grid mask operations. Overwriting the grid is safe because the
// counts no longer depend on it.
type VectorizedStrategy struct {
	counts []uint8
	passes []pass
	size   int
}

// NewVectorizedStrategy creates a vectorized update strategy.
// The count buffer is allocated on the first Step and reused afterwards.
func NewVectorizedStrategy() *VectorizedStrategy {
	return &VectorizedStrategy{}
}

// Name implements Strategy.
func (s *VectorizedStrategy) Name() string { return StrategyVectorized }

// PassKind classifies an accumulation pass by which axes wrap.
type PassKind uint8

// Pass kinds.
const (
	PassInterior PassKind = iota
	PassBorderRow
	PassBorderColumn
	PassCorner
)

func (k PassKind) String() string {
	switch k {
	case PassInterior:
		return "interior"
	case PassBorderRow:
		return "border-row"
	case PassBorderColumn:
		return "border-column"
	case PassCorner:
		return "corner"
	default:
		return "unknown"
	}
}

// span covers destination indices [lo, hi) on one axis; destination lo
// reads source index src, lo+1 reads src+1, and so on.
type span struct {
	lo, hi, src int
	wrapped     bool
}

func (sp span) len() int { return sp.hi - sp.lo }

// pass adds the block rows×cols of the shifted grid into the count buffer.
type pass struct {
	rows, cols span
	kind       PassKind
}

// axisSpans splits a shift by d ∈ {-1, 0, 1} on an axis of length n.
// Empty spans (possible when n == 1) are dropped.
func axisSpans(d, n int) []span {
	var out []span
	switch d {
	case 0:
		out = append(out, span{lo: 0, hi: n, src: 0})
	case -1:
		out = append(out,
			span{lo: 1, hi: n, src: 0},
			span{lo: 0, hi: 1, src: n - 1, wrapped: true})
	case 1:
		out = append(out,
			span{lo: 0, hi: n - 1, src: 1},
			span{lo: n - 1, hi: n, src: 0, wrapped: true})
	}
	kept := out[:0]
	for _, sp := range out {
		if sp.len() > 0 {
			kept = append(kept, sp)
		}
	}
	return kept
}

// neighborOffsets lists the eight directions as (row, col) deltas:
// four edge-adjacent, then four diagonal.
var neighborOffsets = [8][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// buildPasses returns the accumulation passes for an n×n grid, all
// interior passes first, then border rows, border columns and corners.
func buildPasses(n int) []pass {
	var passes []pass
	for _, off := range neighborOffsets {
		for _, rows := range axisSpans(off[0], n) {
			for _, cols := range axisSpans(off[1], n) {
				kind := PassInterior
				switch {
				case rows.wrapped && cols.wrapped:
					kind = PassCorner
				case rows.wrapped:
					kind = PassBorderRow
				case cols.wrapped:
					kind = PassBorderColumn
				}
				passes = append(passes, pass{rows: rows, cols: cols, kind: kind})
			}
		}
	}
	ordered := make([]pass, 0, len(passes))
	for _, k := range []PassKind{PassInterior, PassBorderRow, PassBorderColumn, PassCorner} {
		for _, p := range passes {
			if p.kind == k {
				ordered = append(ordered, p)
			}
		}
	}
	return ordered
}

func (s *VectorizedStrategy) resize(n int) {
	if s.size == n && s.counts != nil {
		return
	}
	s.size = n
	s.counts = make([]uint8, n*n)
	s.passes = buildPasses(n)
}

// Counts fills the count buffer from g and returns it. The returned slice
// is row-major, owned by the strategy and overwritten by the next call.
func (s *VectorizedStrategy) Counts(g *Grid) []uint8 {
	s.resize(g.size)
	clear(s.counts)
	for _, p := range s.passes {
		s.accumulate(g, p)
	}
	return s.counts
}

func (s *VectorizedStrategy) accumulate(g *Grid, p pass) {
	n := s.size
	w := p.cols.len()
	for i := range p.rows.len() {
		d := (p.rows.lo+i)*n + p.cols.lo
		src := (p.rows.src+i)*n + p.cols.src
		dst := s.counts[d : d+w]
		for j, v := range g.cells[src : src+w] {
			dst[j] += v
		}
	}
}

// Step implements Strategy.
func (s *VectorizedStrategy) Step(g *Grid) {
	counts := s.Counts(g)
	cells := g.cells
	// Survivors: alive and exactly two neighbors.
	for i, c := range counts {
		cells[i] &= mask(c == 2)
	}
	// Births and three-neighbor survivors.
	for i, c := range counts {
		cells[i] |= mask(c == 3)
	}
}

func mask(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
