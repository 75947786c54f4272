// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render draws life grids with gg.
//
// Each cell becomes a tile×tile square: live cells in the alive color on a
// background fill. An optional text overlay (generation counter, FPS) is
// drawn in the top-left corner with a gg text face.
//
//	r, _ := render.New(10, render.WithDefaultOverlay())
//	dc, _ := r.Render(grid, "generation 42")
//	defer dc.Close()
//	_ = dc.SavePNG("life.png")
package render
