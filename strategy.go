// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package life

import "fmt"

// Strategy advances a grid by exactly one generation, in place.
//
// Implementations read only the pre-update state when computing any cell,
// so every strategy produces bit-identical output for the same input.
// A Strategy may keep scratch buffers between calls and is therefore not
// safe for concurrent use.
type Strategy interface {
	// Step advances g by one generation.
	Step(g *Grid)

	// Name returns the registry name of the strategy.
	Name() string
}

// Registered strategy names.
const (
	StrategyScalar     = "scalar"
	StrategyVectorized = "vectorized"
	StrategyParallel   = "parallel"
)

// StrategyNames lists every name accepted by StrategyByName.
func StrategyNames() []string {
	return []string{StrategyScalar, StrategyVectorized, StrategyParallel}
}

// StrategyByName returns a new strategy for name.
// Strategies returned for StrategyParallel own goroutines; release them
// with Close (see ParallelStrategy).
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case StrategyScalar:
		return NewScalarStrategy(), nil
	case StrategyVectorized:
		return NewVectorizedStrategy(), nil
	case StrategyParallel:
		return NewParallelStrategy(0), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
