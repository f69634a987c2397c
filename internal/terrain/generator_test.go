package terrain

import (
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-terrain/internal/world"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 48
	return cfg
}

func generate(t *testing.T, cfg Config) *world.Grid {
	t.Helper()
	gen, err := NewGenerator(cfg, quietLogger())
	require.NoError(t, err)
	grid, err := gen.Generate()
	require.NoError(t, err)
	return grid
}

func TestGenerateDeterministic(t *testing.T) {
	for _, warp := range []string{WarpPerlin, WarpSimplex} {
		t.Run(warp, func(t *testing.T) {
			cfg := smallConfig()
			cfg.Params.WarpNoise = warp
			a := generate(t, cfg)
			b := generate(t, cfg)
			assert.True(t, slices.Equal(a.Cells(), b.Cells()))
		})
	}
}

func TestGenerateSeedMatters(t *testing.T) {
	cfg := smallConfig()
	a := generate(t, cfg)
	cfg.Seed++
	b := generate(t, cfg)
	assert.False(t, slices.Equal(a.Cells(), b.Cells()))
}

func TestGenerateInvariants(t *testing.T) {
	cfg := smallConfig()
	grid := generate(t, cfg)
	p := cfg.Params

	require.Equal(t, cfg.Width*cfg.Height, grid.Len())
	_, ok := grid.TileAt(cfg.Width, 0)
	assert.False(t, ok)
	_, ok = grid.TileAt(0, cfg.Height)
	assert.False(t, ok)

	require.NoError(t, grid.ForEachCell(func(i int, c *world.Cell) error {
		assert.Equal(t, int(c.Elevation) < p.WaterLevel, c.Surface == world.Ocean, "cell %d", i)
		want, err := ColorFor(c.Elevation, c.Surface, p)
		require.NoError(t, err)
		assert.Equal(t, want, c.Color)
		assert.Equal(t, world.Properties(0), c.Properties)
		return nil
	}))
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Params.SnowLevel = cfg.Params.RockLevel
	gen, err := NewGenerator(cfg, nil)
	assert.Nil(t, gen)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGenerateWorld(t *testing.T) {
	grid, err := GenerateWorld(32, 16)
	require.NoError(t, err)
	assert.Equal(t, 512, grid.Len())
	assert.Equal(t, 32, grid.Size().W)

	_, err = GenerateWorld(0, 16)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSummarize(t *testing.T) {
	grid, err := world.New(4, 1)
	require.NoError(t, err)
	p := DefaultConfig().Params
	elevations := []uint8{10, 150, 200, 250}
	for i, e := range elevations {
		c, _ := grid.At(i)
		c.Elevation = e
		c.Surface = Classify(e, p)
	}
	s := Summarize(grid, p)
	assert.Equal(t, Stats{
		Cells:         4,
		Land:          3,
		Ocean:         1,
		Rock:          1,
		Snow:          1,
		MinElevation:  10,
		MaxElevation:  250,
		MeanElevation: 152.5,
	}, s)
	assert.Equal(t, 0.75, s.LandFraction())
	assert.Equal(t, 0.0, Stats{}.LandFraction())
}
