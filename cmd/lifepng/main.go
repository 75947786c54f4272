// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command lifepng runs a simulation headless and writes frames as PNG.
//
// Every -every'th generation is rendered with gg and encoded on a bounded
// set of goroutines while the simulation keeps stepping. With -spirv the
// compiled GPU step kernel is written as well, next to the uniform and
// input cell buffers for the first generation.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/life"
	"github.com/gogpu/life/kernel"
	"github.com/gogpu/life/render"
)

func main() {
	var (
		size        = flag.Int("size", 80, "grid side length")
		tile        = flag.Int("tile-size", 10, "cell side length in pixels")
		generations = flag.Int("generations", 100, "generations to simulate")
		every       = flag.Int("every", 10, "write every n-th generation")
		seed        = flag.Uint64("seed", 1, "random seed")
		strategy    = flag.String("strategy", life.StrategyVectorized, "update strategy")
		pattern     = flag.String("pattern", "", "plaintext pattern file to place at the center instead of randomizing")
		out         = flag.String("out", "frames", "output directory")
		spirv       = flag.String("spirv", "", "also write the compiled step kernel, its uniform and the initial cells to this path")
		verbose     = flag.Bool("v", false, "log every generation")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	life.SetLogger(logger)

	if *every <= 0 {
		log.Fatalf("every must be positive, got %d", *every)
	}

	s, err := life.StrategyByName(*strategy)
	if err != nil {
		log.Fatal(err)
	}
	sim, err := life.NewSimulation(*size, life.WithStrategy(s), life.WithSeed(*seed))
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = sim.Close()
	}()

	if *pattern != "" {
		data, err := os.ReadFile(*pattern) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			log.Fatal(err)
		}
		p, err := life.ParsePattern(string(data))
		if err != nil {
			log.Fatal(err)
		}
		sim.Place(p, (*size-p.Height)/2, (*size-p.Width)/2)
	} else {
		sim.Randomize()
	}

	if *spirv != "" {
		if err := writeKernel(*spirv, sim.Snapshot()); err != nil {
			log.Fatal(err)
		}
		x, y := kernel.Workgroups(*size)
		logger.Info("kernel written", "path", *spirv, "workgroups_x", x, "workgroups_y", y)
	}

	r, err := render.New(*tile, render.WithDefaultOverlay())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal(err)
	}

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for gen := 0; gen <= *generations; gen++ {
		if gen > 0 {
			sim.Update()
		}
		if gen%*every != 0 {
			continue
		}
		frame := sim.Snapshot()
		path := filepath.Join(*out, fmt.Sprintf("gen_%06d.png", gen))
		caption := fmt.Sprintf("generation %d, population %d", gen, frame.Population())
		eg.Go(func() error {
			if err := r.SavePNG(path, frame, caption); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			logger.Debug("frame written", "path", path)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}
	logger.Info("done", "generations", *generations, "population", sim.Population(), "out", *out)
}

// writeKernel writes the SPIR-V module to path, and the uniform and input
// storage buffers for g to path.params and path.cells.
func writeKernel(path string, g *life.Grid) error {
	spirv, err := kernel.Compile()
	if err != nil {
		return err
	}
	files := []struct {
		path string
		data []byte
	}{
		{path, spirv},
		{path + ".params", kernel.Params(g.Size())},
		{path + ".cells", kernel.Pack(g)},
	}
	for _, f := range files {
		if err := os.WriteFile(f.path, f.data, 0o644); err != nil { //nolint:gosec // output file, not secret
			return err
		}
	}
	return nil
}
