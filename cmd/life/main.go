// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command life runs an interactive Game of Life window.
//
// The simulation starts paused. Space toggles running, a left click
// toggles the cell under the pointer, R re-randomizes, C clears and Escape
// quits. The current FPS is shown in the top-left corner.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/life"
	"github.com/gogpu/life/render"
)

var (
	backgroundRGB = [3]byte{170, 180, 110}
	aliveRGB      = [3]byte{0, 255, 100}
)

type config struct {
	screenSize int
	tileSize   int
	fpsCap     int
	empty      bool
	strategy   string
	seed       uint64
	verbose    bool
}

func parseFlags() config {
	var c config
	flag.IntVar(&c.screenSize, "screen-size", 800, "window side length in pixels")
	flag.IntVar(&c.tileSize, "tile-size", 10, "cell side length in pixels")
	flag.IntVar(&c.fpsCap, "fps-cap", 120, "maximum updates per second")
	flag.BoolVar(&c.empty, "empty", false, "start with an empty grid")
	flag.StringVar(&c.strategy, "strategy", life.StrategyVectorized, "update strategy: scalar, vectorized or parallel")
	flag.Uint64Var(&c.seed, "seed", 0, "random seed (0 picks one from the clock)")
	flag.BoolVar(&c.verbose, "v", false, "log every generation")
	flag.Parse()
	return c
}

func (c config) validate() error {
	if c.tileSize <= 0 || c.screenSize <= 0 {
		return errors.New("screen size and tile size must be positive")
	}
	if c.screenSize%c.tileSize != 0 {
		return fmt.Errorf("screen size %d must be divisible by tile size %d", c.screenSize, c.tileSize)
	}
	if c.fpsCap <= 0 {
		return fmt.Errorf("fps cap must be positive, got %d", c.fpsCap)
	}
	return nil
}

// game adapts a life.Simulation to ebiten.Game.
type game struct {
	sim     *life.Simulation
	tiles   *render.Renderer
	face    text.Face
	running bool

	texture *ebiten.Image
	pixels  []byte
}

func newGame(sim *life.Simulation, tiles *render.Renderer) *game {
	n := sim.Size()
	return &game{
		sim:     sim,
		tiles:   tiles,
		face:    text.NewGoXFace(basicfont.Face7x13),
		texture: ebiten.NewImage(n, n),
		pixels:  make([]byte, n*n*4),
	}
}

func (g *game) title() string {
	if g.running {
		return "Game of Life - running"
	}
	return "Game of Life - paused"
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.running = !g.running
		ebiten.SetWindowTitle(g.title())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := g.tiles.CellAt(x, y, g.sim.Size()); ok {
			if _, err := g.sim.Toggle(row, col); err != nil {
				return err
			}
		}
	}

	if g.running {
		g.sim.Update()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.sim.View(func(grid *life.Grid) {
		n := grid.Size()
		for r := range n {
			for c, v := range grid.Row(r) {
				rgb := backgroundRGB
				if v == life.Alive {
					rgb = aliveRGB
				}
				i := (r*n + c) * 4
				g.pixels[i+0] = rgb[0]
				g.pixels[i+1] = rgb[1]
				g.pixels[i+2] = rgb[2]
				g.pixels[i+3] = 0xff
			}
		}
	})
	g.texture.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	tile := float64(g.tiles.TileSize())
	op.GeoM.Scale(tile, tile)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.texture, op)

	fps := fmt.Sprintf("%.5f", ebiten.ActualFPS())
	top := &text.DrawOptions{}
	top.GeoM.Translate(10, 4)
	top.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, fps, g.face, top)
}

func (g *game) Layout(_, _ int) (int, int) {
	side := g.sim.Size() * g.tiles.TileSize()
	return side, side
}

func main() {
	cfg := parseFlags()
	if err := cfg.validate(); err != nil {
		log.Fatal(err)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	life.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	strategy, err := life.StrategyByName(cfg.strategy)
	if err != nil {
		log.Fatal(err)
	}

	tiles := cfg.screenSize / cfg.tileSize
	p := message.NewPrinter(language.English)
	p.Printf("Running the game with %d tiles...\n", tiles*tiles)

	opts := []life.Option{life.WithStrategy(strategy)}
	if cfg.seed != 0 {
		opts = append(opts, life.WithSeed(cfg.seed))
	}
	sim, err := life.NewSimulation(tiles, opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = sim.Close()
	}()

	if !cfg.empty {
		sim.Randomize()
	}

	renderer, err := render.New(cfg.tileSize)
	if err != nil {
		log.Fatal(err)
	}
	g := newGame(sim, renderer)
	ebiten.SetWindowSize(cfg.screenSize, cfg.screenSize)
	ebiten.SetWindowTitle(g.title())
	ebiten.SetTPS(cfg.fpsCap)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
