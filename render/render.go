// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/life"
)

// ErrInvalidTileSize is returned by New for a non-positive tile size.
var ErrInvalidTileSize = errors.New("render: tile size must be positive")

// Default palette.
var (
	DefaultBackground = gg.RGB(170.0/255, 180.0/255, 110.0/255)
	DefaultAlive      = gg.RGB(0, 1, 100.0/255)
	DefaultText       = gg.RGB(0, 0, 0)
)

// DefaultFontSize is the overlay size used by WithDefaultOverlay.
const DefaultFontSize = 18

// Option configures a Renderer.
type Option func(*Renderer)

// WithColors sets the background and live-cell colors.
func WithColors(background, alive gg.RGBA) Option {
	return func(r *Renderer) {
		r.background = background
		r.alive = alive
	}
}

// WithOverlay enables the caption overlay using face.
func WithOverlay(face text.Face) Option {
	return func(r *Renderer) {
		r.face = face
	}
}

// WithDefaultOverlay enables the caption overlay with Go Regular at
// DefaultFontSize. If the font cannot be loaded the overlay stays off.
func WithDefaultOverlay() Option {
	return func(r *Renderer) {
		face, err := DefaultFace(DefaultFontSize)
		if err != nil {
			life.Logger().Warn("render: default font unavailable", "err", err)
			return
		}
		r.face = face
	}
}

var goRegular = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// DefaultFace returns a Go Regular face at the given size.
func DefaultFace(size float64) (text.Face, error) {
	src, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("render: load Go Regular: %w", err)
	}
	return src.Face(size), nil
}

// Renderer maps grid cells to square tiles.
// A Renderer is immutable after New and safe for concurrent use.
type Renderer struct {
	tile       int
	background gg.RGBA
	alive      gg.RGBA
	face       text.Face
}

// New creates a renderer drawing each cell as a tile×tile square.
func New(tile int, opts ...Option) (*Renderer, error) {
	if tile <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTileSize, tile)
	}
	r := &Renderer{
		tile:       tile,
		background: DefaultBackground,
		alive:      DefaultAlive,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// TileSize returns the side length of a cell in pixels.
func (r *Renderer) TileSize() int {
	return r.tile
}

// Extent returns the pixel side length of an image showing g.
func (r *Renderer) Extent(g *life.Grid) int {
	return g.Size() * r.tile
}

// CellAt maps pixel (x, y) to the cell under it. ok is false when the pixel
// lies outside a size×size grid.
func (r *Renderer) CellAt(x, y, size int) (row, col int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/r.tile, x/r.tile
	if row >= size || col >= size {
		return 0, 0, false
	}
	return row, col, true
}

// Draw paints g onto dc starting at the origin, followed by the caption
// when an overlay face is configured and caption is non-empty.
func (r *Renderer) Draw(dc *gg.Context, g *life.Grid, caption string) error {
	dc.ClearWithColor(r.background)

	t := float64(r.tile)
	live := 0
	for row := range g.Size() {
		for col, c := range g.Row(row) {
			if c == life.Alive {
				dc.DrawRectangle(float64(col)*t, float64(row)*t, t, t)
				live++
			}
		}
	}
	if live > 0 {
		dc.SetColor(r.alive.Color())
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("render: fill cells: %w", err)
		}
	}

	if r.face != nil && caption != "" {
		dc.SetFont(r.face)
		dc.SetColor(DefaultText.Color())
		dc.DrawString(caption, 10, DefaultFontSize)
	}
	return nil
}

// Render draws g into a new context sized to fit it. The caller must
// Close the returned context.
func (r *Renderer) Render(g *life.Grid, caption string) (*gg.Context, error) {
	side := r.Extent(g)
	dc := gg.NewContext(side, side)
	if err := r.Draw(dc, g, caption); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}

// EncodePNG renders g and writes it to w as PNG.
func (r *Renderer) EncodePNG(w io.Writer, g *life.Grid, caption string) error {
	dc, err := r.Render(g, caption)
	if err != nil {
		return err
	}
	defer func() {
		_ = dc.Close()
	}()
	return dc.EncodePNG(w)
}

// SavePNG renders g and writes it to the file at path.
func (r *Renderer) SavePNG(path string, g *life.Grid, caption string) error {
	dc, err := r.Render(g, caption)
	if err != nil {
		return err
	}
	defer func() {
		_ = dc.Close()
	}()
	return dc.SavePNG(path)
}
