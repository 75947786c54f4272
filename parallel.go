// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package life

import "github.com/gogpu/life/internal/parallel"

// ParallelStrategy is the scalar strategy split into row bands.
//
// Every band reads the pre-update grid and writes its own rows of a shared
// output buffer; the buffer is swapped in after all bands finish. Step
// blocks until the generation is complete, so callers see the same
// synchronous behavior as ScalarStrategy.
type ParallelStrategy struct {
	pool *parallel.Pool
	next []uint8
}

// NewParallelStrategy creates a parallel strategy backed by the given
// number of workers. If workers is 0 or negative, GOMAXPROCS is used.
func NewParallelStrategy(workers int) *ParallelStrategy {
	return &ParallelStrategy{pool: parallel.NewPool(workers)}
}

// Name implements Strategy.
func (s *ParallelStrategy) Name() string { return StrategyParallel }

// Workers returns the number of worker goroutines.
func (s *ParallelStrategy) Workers() int { return s.pool.Workers() }

// Step implements Strategy.
func (s *ParallelStrategy) Step(g *Grid) {
	s.next = ensureBuffer(s.next, len(g.cells))
	next := s.next
	s.pool.ForBands(g.size, func(b parallel.Band) {
		stepRows(g, next, b.Lo, b.Hi)
	})
	g.cells, s.next = s.next, g.cells
}

// Close stops the worker goroutines. Steps after Close run on the calling
// goroutine.
func (s *ParallelStrategy) Close() error {
	s.pool.Close()
	return nil
}
