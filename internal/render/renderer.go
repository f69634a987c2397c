//go:build ebiten

package render

import (
	"mad-terrain/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a finished world into a texture once per layer and
// draws it scaled every frame.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	layer Layer
	dirty bool
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), dirty: true}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// SetLayer switches the view; the texture is rebuilt on the next Blit.
func (gp *GridPainter) SetLayer(layer Layer) {
	if layer != gp.layer {
		gp.layer = layer
		gp.dirty = true
	}
}

// Invalidate forces the texture to be rebuilt, e.g. after regeneration.
func (gp *GridPainter) Invalidate() { gp.dirty = true }

// Blit draws the grid onto dst, uploading pixels only when needed.
func (gp *GridPainter) Blit(dst *ebiten.Image, grid *world.Grid, scale int) {
	if grid == nil || grid.Len() != gp.w*gp.h {
		return
	}
	if gp.dirty {
		FillRGBA(gp.buf, grid.Cells(), gp.w, gp.layer)
		gp.img.WritePixels(gp.buf)
		gp.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
