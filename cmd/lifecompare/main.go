// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command lifecompare times every update strategy on the same random grid.
//
// For each strategy it reports the construction time and the total and
// per-iteration time of the update loop. With -verify it also checks that
// all strategies ended on the same grid.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/life"
)

type result struct {
	name  string
	init  time.Duration
	loop  time.Duration
	final *life.Grid
}

func measure(name string, size, iterations int, seed uint64) (result, error) {
	start := time.Now()

	strategy, err := life.StrategyByName(name)
	if err != nil {
		return result{}, err
	}
	sim, err := life.NewSimulation(size, life.WithStrategy(strategy), life.WithSeed(seed))
	if err != nil {
		return result{}, err
	}
	defer func() {
		_ = sim.Close()
	}()
	sim.Randomize()

	mid := time.Now()
	for range iterations {
		sim.Update()
	}
	stop := time.Now()

	return result{
		name:  name,
		init:  mid.Sub(start),
		loop:  stop.Sub(mid),
		final: sim.Snapshot(),
	}, nil
}

func main() {
	var (
		size       = flag.Int("size", 1000, "grid side length")
		iterations = flag.Int("iterations", 50, "updates per strategy")
		seed       = flag.Uint64("seed", 1, "random seed shared by all strategies")
		strategies = flag.String("strategies", strings.Join(life.StrategyNames(), ","), "comma-separated strategies to run")
		verify     = flag.Bool("verify", false, "check that all strategies produce the same grid")
	)
	flag.Parse()

	life.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if *iterations <= 0 {
		log.Fatalf("iterations must be positive, got %d", *iterations)
	}

	p := message.NewPrinter(language.English)
	p.Printf("Grid %d×%d (%d cells), %d iterations, seed %d\n", *size, *size, *size**size, *iterations, *seed)

	var results []result
	for _, name := range strings.Split(*strategies, ",") {
		name = strings.TrimSpace(name)
		p.Printf("\nRunning %s strategy...\n", name)
		res, err := measure(name, *size, *iterations, *seed)
		if err != nil {
			log.Fatal(err)
		}
		perIter := res.loop / time.Duration(*iterations)
		p.Printf("Init time: %.5f[s] Total loop time: %.5f[s], %d iterations, %.5f[s] per iteration\n",
			res.init.Seconds(), res.loop.Seconds(), *iterations, perIter.Seconds())
		results = append(results, res)
	}

	if !*verify || len(results) < 2 {
		return
	}
	ref := results[0]
	for _, res := range results[1:] {
		if !res.final.Equal(ref.final) {
			log.Fatalf("%s and %s strategies diverged", ref.name, res.name)
		}
	}
	p.Printf("\nAll %d strategies agree after %d iterations (population %d)\n",
		len(results), *iterations, ref.final.Population())
}
