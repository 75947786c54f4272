// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package life

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

// allStrategies returns one fresh instance of every strategy and registers
// cleanup for those holding goroutines.
func allStrategies(t testing.TB) []Strategy {
	t.Helper()
	var out []Strategy
	for _, name := range StrategyNames() {
		s, err := StrategyByName(name)
		if err != nil {
			t.Fatalf("StrategyByName(%q) error = %v", name, err)
		}
		if c, ok := s.(io.Closer); ok {
			t.Cleanup(func() { _ = c.Close() })
		}
		out = append(out, s)
	}
	return out
}

// =============================================================================
// Registry
// =============================================================================

func TestStrategyByName(t *testing.T) {
	for _, name := range StrategyNames() {
		s, err := StrategyByName(name)
		if err != nil {
			t.Fatalf("StrategyByName(%q) error = %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("StrategyByName(%q).Name() = %q", name, s.Name())
		}
		if c, ok := s.(io.Closer); ok {
			_ = c.Close()
		}
	}

	if _, err := StrategyByName("numpy"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("StrategyByName(unknown) error = %v, want ErrUnknownStrategy", err)
	}
}

// =============================================================================
// Rule behavior shared by every strategy
// =============================================================================

func TestStrategies_StillLifeBlock(t *testing.T) {
	for _, s := range allStrategies(t) {
		t.Run(s.Name(), func(t *testing.T) {
			for _, size := range []int{4, 5, 8} {
				g, _ := NewGrid(size)
				g.Place(Block, 1, 1)
				want := g.Clone()

				for gen := 1; gen <= 3; gen++ {
					s.Step(g)
					if !g.Equal(want) {
						t.Fatalf("size %d gen %d: block changed:\n%s", size, gen, g)
					}
				}
			}
		})
	}
}

func TestStrategies_BlinkerPeriodTwo(t *testing.T) {
	for _, s := range allStrategies(t) {
		t.Run(s.Name(), func(t *testing.T) {
			g := mustGrid(t,
				".....",
				".....",
				".OOO.",
				".....",
				".....",
			)
			start := g.Clone()
			vertical := mustGrid(t,
				".....",
				"..O..",
				"..O..",
				"..O..",
				".....",
			)

			s.Step(g)
			if g.Equal(start) {
				t.Fatal("blinker unchanged after one step")
			}
			if !g.Equal(vertical) {
				t.Fatalf("after one step got\n%swant\n%s", g, vertical)
			}

			s.Step(g)
			if !g.Equal(start) {
				t.Fatalf("after two steps got\n%swant\n%s", g, start)
			}
		})
	}
}

func TestStrategies_BlinkerAcrossEdge(t *testing.T) {
	// The blinker straddles the left/right edge and must still oscillate.
	for _, s := range allStrategies(t) {
		t.Run(s.Name(), func(t *testing.T) {
			g, _ := NewGrid(6)
			g.Place(Blinker, 0, 5) // cells (0,5), (0,0), (0,1)
			start := g.Clone()

			s.Step(g)
			for _, rc := range [][2]int{{5, 0}, {0, 0}, {1, 0}} {
				if v, _ := g.Cell(rc[0], rc[1]); v != Alive {
					t.Errorf("after one step cell %v = %d, want alive\n%s", rc, v, g)
				}
			}
			if g.Population() != 3 {
				t.Errorf("population = %d, want 3", g.Population())
			}

			s.Step(g)
			if !g.Equal(start) {
				t.Errorf("after two steps got\n%swant\n%s", g, start)
			}
		})
	}
}

func TestStrategies_GliderCircumnavigates(t *testing.T) {
	// A glider moves one cell diagonally every four generations, so on an
	// 8×8 torus it is back where it started after 32.
	for _, s := range allStrategies(t) {
		t.Run(s.Name(), func(t *testing.T) {
			g, _ := NewGrid(8)
			g.Place(Glider, 0, 0)
			start := g.Clone()

			for range 4 {
				s.Step(g)
			}
			shifted, _ := NewGrid(8)
			shifted.Place(Glider, 1, 1)
			if !g.Equal(shifted) {
				t.Fatalf("after 4 steps got\n%swant\n%s", g, shifted)
			}

			for range 28 {
				s.Step(g)
			}
			if !g.Equal(start) {
				t.Errorf("after 32 steps got\n%swant\n%s", g, start)
			}
		})
	}
}

func TestStrategies_SingleCell(t *testing.T) {
	for _, s := range allStrategies(t) {
		t.Run(s.Name(), func(t *testing.T) {
			g, _ := NewGrid(1)
			_ = g.SetCell(0, 0, Alive)
			s.Step(g)
			if v, _ := g.Cell(0, 0); v != Dead {
				t.Errorf("live 1×1 after Step = %d, want dead (eight virtual neighbors)", v)
			}

			s.Step(g)
			if v, _ := g.Cell(0, 0); v != Dead {
				t.Errorf("dead 1×1 after Step = %d, want dead", v)
			}
		})
	}
}

func TestStrategies_PreserveSize(t *testing.T) {
	for _, s := range allStrategies(t) {
		for _, size := range []int{1, 2, 3, 7, 16} {
			g, _ := NewGrid(size)
			Randomize(g, NewRand(uint64(size)))
			s.Step(g)
			if g.Size() != size || len(g.cells) != size*size {
				t.Errorf("%s: size %d became %d (%d cells)", s.Name(), size, g.Size(), len(g.cells))
			}
			for i, c := range g.cells {
				if c > Alive {
					t.Fatalf("%s: cell %d = %d after Step", s.Name(), i, c)
				}
			}
		}
	}
}

// =============================================================================
// Equivalence
// =============================================================================

func TestStrategies_Equivalent(t *testing.T) {
	sizes := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 17, 31, 64}
	seeds := []uint64{1, 2, 3}

	for _, size := range sizes {
		for _, seed := range seeds {
			t.Run(fmt.Sprintf("size=%d/seed=%d", size, seed), func(t *testing.T) {
				strategies := allStrategies(t)

				grids := make([]*Grid, len(strategies))
				ref, _ := NewGrid(size)
				Randomize(ref, NewRand(seed))
				for i := range grids {
					grids[i] = ref.Clone()
				}

				for gen := 1; gen <= 10; gen++ {
					for i, s := range strategies {
						s.Step(grids[i])
					}
					for i := 1; i < len(grids); i++ {
						if !grids[i].Equal(grids[0]) {
							t.Fatalf("gen %d: %s diverged from %s\n%s\nvs\n%s",
								gen, strategies[i].Name(), strategies[0].Name(), grids[i], grids[0])
						}
					}
				}
			})
		}
	}
}

func TestStrategies_EquivalentDenseAndEmpty(t *testing.T) {
	for _, size := range []int{1, 2, 3, 5, 8} {
		full, _ := NewGrid(size)
		for i := range full.cells {
			full.cells[i] = Alive
		}
		empty, _ := NewGrid(size)

		for _, start := range []*Grid{full, empty} {
			want := start.Clone()
			NewScalarStrategy().Step(want)

			for _, s := range allStrategies(t) {
				got := start.Clone()
				s.Step(got)
				if !got.Equal(want) {
					t.Errorf("%s size %d (population %d): got\n%swant\n%s",
						s.Name(), size, start.Population(), got, want)
				}
			}
		}
	}
}

func TestStrategies_ReuseAcrossSizes(t *testing.T) {
	// Scratch buffers must follow the grid size between calls.
	for _, s := range allStrategies(t) {
		for _, size := range []int{9, 3, 12, 1, 9} {
			g, _ := NewGrid(size)
			Randomize(g, NewRand(99))
			want := g.Clone()
			NewScalarStrategy().Step(want)

			s.Step(g)
			if !g.Equal(want) {
				t.Errorf("%s: size %d after size change differs from scalar", s.Name(), size)
			}
		}
	}
}
