// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package life

import "testing"

func TestVectorized_CountsMatchScalar(t *testing.T) {
	s := NewVectorizedStrategy()
	for size := 1; size <= 20; size++ {
		for seed := uint64(0); seed < 4; seed++ {
			g, _ := NewGrid(size)
			Randomize(g, NewRand(seed))

			counts := s.Counts(g)
			for r := range size {
				for c := range size {
					want := CountNeighbors(g, r, c)
					if got := int(counts[r*size+c]); got != want {
						t.Fatalf("size %d seed %d: count(%d, %d) = %d, want %d\n%s",
							size, seed, r, c, got, want, g)
					}
				}
			}
		}
	}
}

func TestVectorized_CountsSingleLiveCell(t *testing.T) {
	// Each placement exercises a different pass kind for its neighbors.
	s := NewVectorizedStrategy()
	const size = 5
	for r := range size {
		for c := range size {
			g, _ := NewGrid(size)
			_ = g.SetCell(r, c, Alive)
			counts := s.Counts(g)
			for rr := range size {
				for cc := range size {
					want := CountNeighbors(g, rr, cc)
					if got := int(counts[rr*size+cc]); got != want {
						t.Errorf("live (%d, %d): count(%d, %d) = %d, want %d", r, c, rr, cc, got, want)
					}
				}
			}
		}
	}
}

func TestVectorized_CountsDoNotModifyGrid(t *testing.T) {
	g, _ := NewGrid(10)
	Randomize(g, NewRand(5))
	before := g.Clone()
	NewVectorizedStrategy().Counts(g)
	if !g.Equal(before) {
		t.Error("Counts() modified the grid")
	}
}

func TestBuildPasses(t *testing.T) {
	tests := []struct {
		size                                   int
		interior, borderRow, borderCol, corner int
	}{
		// One cell: every direction wraps on each moving axis.
		{1, 0, 2, 2, 4},
		{2, 8, 6, 6, 4},
		{10, 8, 6, 6, 4},
	}

	for _, tt := range tests {
		counts := map[PassKind]int{}
		var prev PassKind
		for i, p := range buildPasses(tt.size) {
			if i > 0 && p.kind < prev {
				t.Errorf("size %d: pass %d (%v) after %v, want kind order", tt.size, i, p.kind, prev)
			}
			prev = p.kind
			counts[p.kind]++

			if p.kind == PassCorner && (p.rows.len() != 1 || p.cols.len() != 1) {
				t.Errorf("size %d: corner pass covers %d×%d cells, want 1×1", tt.size, p.rows.len(), p.cols.len())
			}
		}

		if counts[PassInterior] != tt.interior || counts[PassBorderRow] != tt.borderRow ||
			counts[PassBorderColumn] != tt.borderCol || counts[PassCorner] != tt.corner {
			t.Errorf("size %d: passes = %v, want interior=%d border-row=%d border-column=%d corner=%d",
				tt.size, counts, tt.interior, tt.borderRow, tt.borderCol, tt.corner)
		}
	}
}

func TestBuildPasses_CoverEachDirectionOnce(t *testing.T) {
	// Summed over all passes, every destination cell receives exactly
	// eight contributions.
	for _, size := range []int{1, 2, 3, 7} {
		hits := make([]int, size*size)
		for _, p := range buildPasses(size) {
			for r := p.rows.lo; r < p.rows.hi; r++ {
				for c := p.cols.lo; c < p.cols.hi; c++ {
					hits[r*size+c]++
				}
			}
		}
		for i, h := range hits {
			if h != 8 {
				t.Errorf("size %d: cell %d covered %d times, want 8", size, i, h)
			}
		}
	}
}

func TestPassKind_String(t *testing.T) {
	tests := []struct {
		kind PassKind
		want string
	}{
		{PassInterior, "interior"},
		{PassBorderRow, "border-row"},
		{PassBorderColumn, "border-column"},
		{PassCorner, "corner"},
		{PassKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("PassKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
