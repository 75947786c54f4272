// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package life simulates Conway's Game of Life on a square toroidal grid.
//
// # Overview
//
// A [Grid] holds N×N cells, each [Dead] or [Alive]. The top row is adjacent
// to the bottom row and the left column to the right column. Each call to
// a [Strategy]'s Step advances the grid by one generation under the
// standard rule: a dead cell with exactly three live neighbors is born, a
// live cell with two or three live neighbors survives, every other cell is
// dead in the next generation.
//
// # Quick Start
//
//	sim, err := life.NewSimulation(80, life.WithSeed(1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sim.Close()
//
//	sim.Randomize()
//	for range 100 {
//	    sim.Update()
//	}
//	fmt.Println(sim.Population())
//
// # Strategies
//
// Three strategies produce bit-identical generations:
//   - [ScalarStrategy]: per-cell neighbor count into a second buffer, then swap
//   - [VectorizedStrategy]: whole-grid shifted accumulation into a count
//     buffer, then two in-place mask passes (default)
//   - [ParallelStrategy]: the scalar strategy split into row bands on a
//     worker pool
//
// # Concurrency
//
// Grid and the strategies are not safe for concurrent use. [Simulation]
// serializes every operation with a mutex, so a render loop may read cells
// from another goroutine without observing a half-finished generation.
//
// # Logging
//
// The package is silent by default. Install a logger with [SetLogger].
package life
