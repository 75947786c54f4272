// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package life

import "math/rand/v2"

// NewRand returns a PCG-backed generator seeded with seed.
// Two generators built from the same seed yield the same sequence.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Randomize assigns every cell of g independently and uniformly to Dead or
// Alive, drawing from r. The package-level source is never used.
func Randomize(g *Grid, r *rand.Rand) {
	// One 64-bit draw covers 64 cells.
	var bits uint64
	for i := range g.cells {
		if i%64 == 0 {
			bits = r.Uint64()
		}
		g.cells[i] = uint8(bits & 1)
		bits >>= 1
	}
}
