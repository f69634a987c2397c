package render

import (
	"image"
	"image/color"

	"mad-terrain/internal/world"
)

// Layer selects which per-cell view is written into a pixel buffer.
type Layer int

const (
	// LayerTerrain uses each cell's display color.
	LayerTerrain Layer = iota
	// LayerElevation shades elevation with a heat ramp and slope emphasis.
	LayerElevation
	// LayerSurface paints a flat land/ocean mask.
	LayerSurface
)

var (
	maskLand  = color.RGBA{R: 200, G: 180, B: 120, A: 255}
	maskOcean = color.RGBA{R: 30, G: 60, B: 140, A: 255}
)

// FillRGBA writes one RGBA pixel per cell into buf, which must hold
// 4*len(cells) bytes. w is the grid width, used for slope shading.
func FillRGBA(buf []byte, cells []world.Cell, w int, layer Layer) {
	switch layer {
	case LayerElevation:
		fillElevationRGBA(buf, cells, w)
	case LayerSurface:
		for i, c := range cells {
			col := maskLand
			if c.Surface == world.Ocean {
				col = maskOcean
			}
			putPixel(buf, i, col)
		}
	default:
		for i, c := range cells {
			putPixel(buf, i, c.Color)
		}
	}
}

// ToImage renders the grid with every cell drawn as a cellSize square.
func ToImage(grid *world.Grid, cellSize int, layer Layer) *image.RGBA {
	if cellSize <= 0 {
		cellSize = 1
	}
	size := grid.Size()
	buf := make([]byte, 4*grid.Len())
	FillRGBA(buf, grid.Cells(), size.W, layer)

	img := image.NewRGBA(image.Rect(0, 0, size.W*cellSize, size.H*cellSize))
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			base := (y*size.W + x) * 4
			col := color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
			for dy := 0; dy < cellSize; dy++ {
				for dx := 0; dx < cellSize; dx++ {
					img.SetRGBA(x*cellSize+dx, y*cellSize+dy, col)
				}
			}
		}
	}
	return img
}

func putPixel(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
