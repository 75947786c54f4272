// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package life

// NextState applies the B3/S23 rule: a dead cell with exactly three live
// neighbors is born, a live cell with anything other than two or three
// dies, and every other cell keeps its state.
func NextState(current uint8, neighbors int) uint8 {
	switch {
	case current == Dead && neighbors == 3:
		return Alive
	case current == Alive && neighbors != 2 && neighbors != 3:
		return Dead
	default:
		return current
	}
}
