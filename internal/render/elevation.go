package render

import (
	"image/color"
	"math"

	"mad-terrain/internal/world"
)

func fillElevationRGBA(buf []byte, cells []world.Cell, w int) {
	if len(cells) == 0 || w <= 0 {
		return
	}
	h := len(cells) / w
	minVal, maxVal := cells[0].Elevation, cells[0].Elevation
	for _, c := range cells {
		if c.Elevation < minVal {
			minVal = c.Elevation
		}
		if c.Elevation > maxVal {
			maxVal = c.Elevation
		}
	}
	rangeVal := float64(maxVal) - float64(minVal)
	if rangeVal == 0 {
		rangeVal = 1
	}

	at := func(idx int) int { return int(cells[idx].Elevation) }
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			col := elevationColor(float64(at(idx)-int(minVal)) / rangeVal)

			// Steeper cells render more opaque so ridges stand out.
			maxDiff := 0
			if x > 0 {
				maxDiff = max(maxDiff, absInt(at(idx)-at(idx-1)))
			}
			if x+1 < w {
				maxDiff = max(maxDiff, absInt(at(idx)-at(idx+1)))
			}
			if y > 0 {
				maxDiff = max(maxDiff, absInt(at(idx)-at(idx-w)))
			}
			if y+1 < h {
				maxDiff = max(maxDiff, absInt(at(idx)-at(idx+w)))
			}
			slope := clamp01(float64(maxDiff) / rangeVal)
			col.A = uint8(math.Round(float64(col.A) * (0.55 + 0.45*slope)))
			putPixel(buf, idx, col)
		}
	}
}

func elevationColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 255}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 255}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 255}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 255}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 255}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			local := (t - prev.t) / (curr.t - prev.t)
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
