// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package life

import (
	"math/rand/v2"
	"time"
)

// Option configures a Simulation during creation.
//
// Example:
//
//	// Vectorized strategy, time-seeded randomness
//	sim, err := life.NewSimulation(80)
//
//	// Reproducible run on the scalar strategy
//	sim, err := life.NewSimulation(80,
//	    life.WithStrategy(life.NewScalarStrategy()),
//	    life.WithSeed(42))
type Option func(*options)

type options struct {
	strategy Strategy
	rng      *rand.Rand
}

func defaultOptions() options {
	return options{
		strategy: nil, // VectorizedStrategy if nil
		rng:      nil, // time-seeded if nil
	}
}

// WithStrategy sets the update strategy. The simulation takes ownership
// and closes it on Close if it implements io.Closer.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithRand sets the random generator used by Randomize.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed seeds the random generator used by Randomize, making runs
// reproducible. It is shorthand for WithRand(NewRand(seed)).
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = NewRand(seed)
	}
}

func (o *options) finish() {
	if o.strategy == nil {
		o.strategy = NewVectorizedStrategy()
	}
	if o.rng == nil {
		o.rng = NewRand(uint64(time.Now().UnixNano()))
	}
}
