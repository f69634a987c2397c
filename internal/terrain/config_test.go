package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                "64",
		"h":                "32",
		"seed":             "-9",
		"water_level":      "100",
		"rock_level":       "170",
		"snow_level":       "230",
		"mountain_height":  "12.5",
		"plate_distortion": "0",
		"warp_noise":       "simplex",
		"octaves":          "nope",
	})
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
	assert.Equal(t, int64(-9), cfg.Seed)
	assert.Equal(t, 100, cfg.Params.WaterLevel)
	assert.Equal(t, 170, cfg.Params.RockLevel)
	assert.Equal(t, 230, cfg.Params.SnowLevel)
	assert.Equal(t, 12.5, cfg.Params.MountainMaxHeight)
	assert.Equal(t, 0.0, cfg.Params.PlateDistortionStrength)
	assert.Equal(t, WarpSimplex, cfg.Params.WarpNoise)
	assert.Equal(t, DefaultConfig().Params.Octaves, cfg.Params.Octaves, "malformed values are ignored")
	assert.NoError(t, cfg.Validate())
}

func TestFromMapNil(t *testing.T) {
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -3 }},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"water above rock", func(c *Config) { c.Params.WaterLevel = 200 }},
		{"rock equals snow", func(c *Config) { c.Params.RockLevel = c.Params.SnowLevel }},
		{"snow above byte", func(c *Config) { c.Params.SnowLevel = 256 }},
		{"negative water", func(c *Config) { c.Params.WaterLevel = -1 }},
		{"zero mountain distance", func(c *Config) { c.Params.MountainFormationDistance = 0 }},
		{"negative mountain height", func(c *Config) { c.Params.MountainMaxHeight = -1 }},
		{"zero elevation scale", func(c *Config) { c.Params.ElevationNoiseScale = 0 }},
		{"negative plate scale", func(c *Config) { c.Params.PlateNoiseScale = -76 }},
		{"negative distortion", func(c *Config) { c.Params.PlateDistortionStrength = -0.1 }},
		{"zero octaves", func(c *Config) { c.Params.Octaves = 0 }},
		{"unknown warp", func(c *Config) { c.Params.WarpNoise = "worley" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestParametersSnapshot(t *testing.T) {
	snap := DefaultConfig().Parameters()
	values := make(map[string]string)
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	assert.Equal(t, "256", values["w"])
	assert.Equal(t, "28282828", values["seed"])
	assert.Equal(t, "130", values["water_level"])
	assert.Equal(t, "0.2", values["mountain_distance"])
	assert.Equal(t, "perlin", values["warp_noise"])

	// Every key in the snapshot round-trips through FromMap.
	assert.Equal(t, DefaultConfig(), FromMap(values))
}
