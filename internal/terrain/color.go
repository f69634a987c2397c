package terrain

import (
	"fmt"
	"image/color"

	"mad-terrain/internal/world"
)

const (
	oceanRed    = 10
	oceanGreen  = 40
	deepBlue    = 90
	shallowBlue = 200

	landRed       = 40
	landBlue      = 40
	lowlandGreen  = 110
	highlandGreen = 200
)

var (
	rockGray  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	snowWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// ColorFor derives the display color of a cell from its elevation and
// surface. A combination that falls outside every band is an error.
func ColorFor(e uint8, surface world.SurfaceKind, p Params) (color.RGBA, error) {
	elev := int(e)
	switch {
	case surface == world.Ocean && elev < p.WaterLevel:
		t := 0.0
		if p.WaterLevel > 1 {
			t = float64(elev) / float64(p.WaterLevel-1)
		}
		return color.RGBA{R: oceanRed, G: oceanGreen, B: lerpComponent(deepBlue, shallowBlue, t), A: 255}, nil
	case surface == world.Land && elev >= p.WaterLevel && elev < p.RockLevel:
		t := float64(elev-p.WaterLevel) / float64(p.RockLevel-p.WaterLevel)
		return color.RGBA{R: landRed, G: lerpComponent(lowlandGreen, highlandGreen, t), B: landBlue, A: 255}, nil
	case surface == world.Land && elev >= p.RockLevel && elev < p.SnowLevel:
		return rockGray, nil
	case surface == world.Land && elev >= p.SnowLevel:
		return snowWhite, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: elevation %d as %s", ErrUnclassified, e, surface)
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
