// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package life

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"
)

// Simulation owns a grid, an update strategy and a random source.
//
// It is the surface used by the interactive, rendering and benchmarking
// layers: construct, Randomize, Update, and single-cell access. Every
// method takes an exclusive lock, so a renderer reading the grid never
// overlaps an in-flight Update.
type Simulation struct {
	mu         sync.Mutex
	grid       *Grid
	strategy   Strategy
	rng        *rand.Rand
	generation uint64
}

// NewSimulation creates a simulation on an all-dead size×size grid.
func NewSimulation(size int, opts ...Option) (*Simulation, error) {
	grid, err := NewGrid(size)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.finish()

	Logger().Info("life: simulation created",
		slog.Int("size", size),
		slog.String("strategy", o.strategy.Name()))

	return &Simulation{
		grid:     grid,
		strategy: o.strategy,
		rng:      o.rng,
	}, nil
}

// Size returns the side length of the grid.
func (s *Simulation) Size() int {
	return s.grid.Size()
}

// Strategy returns the name of the update strategy in use.
func (s *Simulation) Strategy() string {
	return s.strategy.Name()
}

// Randomize assigns every cell uniformly at random from the simulation's
// generator. The generation counter is reset.
func (s *Simulation) Randomize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	Randomize(s.grid, s.rng)
	s.generation = 0
	Logger().Info("life: randomized", slog.Int("population", s.grid.Population()))
}

// Update advances the grid by exactly one generation.
func (s *Simulation) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		s.strategy.Step(s.grid)
		s.generation++
		return
	}

	start := time.Now()
	s.strategy.Step(s.grid)
	s.generation++
	l.Debug("life: generation",
		slog.Uint64("generation", s.generation),
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("population", s.grid.Population()))
}

// Cell returns the state of the cell at (row, col).
func (s *Simulation) Cell(row, col int) (uint8, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Cell(row, col)
}

// SetCell sets the cell at (row, col) to Dead or Alive.
func (s *Simulation) SetCell(row, col int, v uint8) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.SetCell(row, col, v)
}

// Toggle flips the cell at (row, col) and returns its new state.
func (s *Simulation) Toggle(row, col int) (uint8, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Toggle(row, col)
}

// Place stamps p with its top-left corner at (row, col), wrapping
// toroidally.
func (s *Simulation) Place(p Pattern, row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Place(p, row, col)
}

// Clear kills every cell and resets the generation counter.
func (s *Simulation) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grid.Clear()
	s.generation = 0
	Logger().Info("life: cleared")
}

// Generation returns the number of updates since creation, the last
// Randomize or the last Clear.
func (s *Simulation) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Population returns the number of live cells.
func (s *Simulation) Population() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Population()
}

// Snapshot returns a copy of the current grid.
func (s *Simulation) Snapshot() *Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// View calls fn with the live grid while holding the lock. fn must not
// retain the grid or call other Simulation methods.
func (s *Simulation) View(fn func(g *Grid)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.grid)
}

// Close releases the strategy's resources.
func (s *Simulation) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.strategy.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
