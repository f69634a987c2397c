package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-terrain/internal/world"
)

func uniformFields(n int, sample float64, plate PlateSample, kind PlateKind) (ElevationField, PlateField) {
	samples := make([]float64, n)
	plates := make([]PlateSample, n)
	for i := range samples {
		samples[i] = sample
		plates[i] = plate
	}
	kinds := map[uint32]PlateKind{plate.Key(): kind}
	return NewElevationField(samples), NewPlateField(plates, kinds)
}

func TestSynthesizeDegenerateFieldUniform(t *testing.T) {
	grid, err := world.New(4, 4)
	require.NoError(t, err)
	p := DefaultConfig().Params
	elev, plates := uniformFields(grid.Len(), 0, PlateSample{ID: 3.2, EdgeDistance: 0}, Continental)

	require.NoError(t, Synthesize(grid, elev, plates, p))

	// 127.5 base + 20 continental + 60 full mountain bonus.
	want := uint8(207)
	first := grid.Cells()[0]
	assert.Equal(t, want, first.Elevation)
	for i, c := range grid.Cells() {
		assert.Equal(t, first, c, "cell %d", i)
	}
	assert.Equal(t, world.Land, first.Surface)
	assert.Equal(t, rockGray, first.Color)
}

func TestSynthesizeClampsHighBonus(t *testing.T) {
	grid, err := world.New(4, 4)
	require.NoError(t, err)
	p := DefaultConfig().Params
	p.MountainMaxHeight = 500
	elev, plates := uniformFields(grid.Len(), 0.9, PlateSample{ID: 1, EdgeDistance: 0}, Oceanic)

	require.NoError(t, Synthesize(grid, elev, plates, p))
	for _, c := range grid.Cells() {
		assert.Equal(t, uint8(255), c.Elevation)
		assert.Equal(t, snowWhite, c.Color)
	}
}

func TestSynthesizeClassificationConsistent(t *testing.T) {
	grid, err := world.New(16, 1)
	require.NoError(t, err)
	p := DefaultConfig().Params
	samples := make([]float64, grid.Len())
	plates := make([]PlateSample, grid.Len())
	for i := range samples {
		samples[i] = -1 + float64(i)*2/15
		plates[i] = PlateSample{ID: float64(i % 2), EdgeDistance: float64(i) * 0.02}
	}
	field := NewPlateField(plates, map[uint32]PlateKind{0: Oceanic, 1: Continental})

	require.NoError(t, Synthesize(grid, NewElevationField(samples), field, p))
	for i, c := range grid.Cells() {
		assert.Equal(t, int(c.Elevation) < p.WaterLevel, c.Surface == world.Ocean, "cell %d elevation %d", i, c.Elevation)
	}
}

func TestSynthesizeUnassignedPlate(t *testing.T) {
	grid, err := world.New(2, 2)
	require.NoError(t, err)
	elev, _ := uniformFields(grid.Len(), 0, PlateSample{}, Oceanic)
	plates := NewPlateField(make([]PlateSample, grid.Len()), map[uint32]PlateKind{})
	assert.ErrorIs(t, Synthesize(grid, elev, plates, DefaultConfig().Params), ErrUnassignedPlate)
}

func TestSynthesizeFieldSizeMismatch(t *testing.T) {
	grid, err := world.New(3, 3)
	require.NoError(t, err)
	elev, plates := uniformFields(4, 0, PlateSample{}, Oceanic)
	assert.ErrorIs(t, Synthesize(grid, elev, plates, DefaultConfig().Params), ErrFieldSize)
}

func TestElevatePlateBias(t *testing.T) {
	p := DefaultConfig().Params
	far := p.MountainFormationDistance * 2
	assert.Equal(t, uint8(120), Elevate(100, Continental, far, p))
	assert.Equal(t, uint8(90), Elevate(100, Oceanic, far, p))
	assert.Equal(t, uint8(0), Elevate(3, Oceanic, far, p))
}

func TestMountainBonusMonotonic(t *testing.T) {
	p := DefaultConfig().Params
	assert.Equal(t, p.MountainMaxHeight, MountainBonus(0, p))
	assert.Equal(t, 0.0, MountainBonus(p.MountainFormationDistance, p))
	assert.InDelta(t, p.MountainMaxHeight/4, MountainBonus(p.MountainFormationDistance/2, p), 1e-9)

	for _, kind := range []PlateKind{Oceanic, Continental} {
		for base := 0.0; base <= 255; base += 17 {
			prev := Elevate(base, kind, 0, p)
			for d := 0.005; d < p.MountainFormationDistance; d += 0.005 {
				e := Elevate(base, kind, d, p)
				require.LessOrEqual(t, e, prev, "base %v kind %s distance %v", base, kind, d)
				prev = e
			}
		}
	}
}
