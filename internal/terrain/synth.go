package terrain

import (
	"fmt"
	"math"

	"mad-terrain/internal/world"
)

// Synthesize combines the elevation and plate fields into every cell of
// grid in a single row-major pass. It stops at the first cell that breaks
// a plate or classification invariant.
func Synthesize(grid *world.Grid, elev ElevationField, plates PlateField, p Params) error {
	if elev.Len() != grid.Len() || plates.Len() != grid.Len() {
		return fmt.Errorf("%w: grid %d, elevation %d, plates %d",
			ErrFieldSize, grid.Len(), elev.Len(), plates.Len())
	}
	return grid.ForEachCell(func(i int, c *world.Cell) error {
		kind, err := plates.KindAt(i)
		if err != nil {
			return err
		}
		e := Elevate(elev.Raw(i), kind, plates.EdgeDistanceAt(i), p)
		surface := Classify(e, p)
		col, err := ColorFor(e, surface, p)
		if err != nil {
			return fmt.Errorf("cell %d: %w", i, err)
		}
		c.Elevation = e
		c.Surface = surface
		c.Color = col
		return nil
	})
}

// Elevate applies the plate bias and the boundary mountain bonus to a base
// elevation, then clamps to [0, 255] and truncates.
func Elevate(base float64, kind PlateKind, edge float64, p Params) uint8 {
	e := base
	if kind == Continental {
		e += p.ContinentalBias
	} else {
		e += p.OceanicBias
	}
	e += MountainBonus(edge, p)
	return clampByte(e)
}

// MountainBonus is the quadratic uplift for cells closer than
// MountainFormationDistance to a plate boundary.
func MountainBonus(edge float64, p Params) float64 {
	if edge >= p.MountainFormationDistance {
		return 0
	}
	factor := 1 - edge/p.MountainFormationDistance
	return p.MountainMaxHeight * math.Pow(factor, 2)
}

// Classify returns Ocean for elevations below the water level.
func Classify(e uint8, p Params) world.SurfaceKind {
	if int(e) < p.WaterLevel {
		return world.Ocean
	}
	return world.Land
}
