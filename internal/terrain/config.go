package terrain

import (
	"fmt"
	"strconv"
)

// Warp noise sources accepted by Params.WarpNoise.
const (
	WarpPerlin  = "perlin"
	WarpSimplex = "simplex"
)

// Params holds the thresholds and noise settings that shape the terrain.
type Params struct {
	WaterLevel int
	RockLevel  int
	SnowLevel  int

	MountainFormationDistance float64
	MountainMaxHeight         float64

	ContinentalBias float64
	OceanicBias     float64

	ElevationNoiseScale     float64
	PlateNoiseScale         float64
	PlateDistortionStrength float64
	WarpNoise               string
	Octaves                 int
}

// Config controls world dimensions, seeding and terrain parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	// CellSize is the on-screen edge length of one cell in pixels. It only
	// affects presentation.
	CellSize int

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    256,
		Height:   256,
		Seed:     28282828,
		CellSize: 4,
		Params: Params{
			WaterLevel:                130,
			RockLevel:                 190,
			SnowLevel:                 215,
			MountainFormationDistance: 0.2,
			MountainMaxHeight:         60,
			ContinentalBias:           20,
			OceanicBias:               -10,
			ElevationNoiseScale:       26,
			PlateNoiseScale:           76,
			PlateDistortionStrength:   4,
			WarpNoise:                 WarpPerlin,
			Octaves:                   6,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse are ignored; Validate reports values that parse
// but are out of range.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	setInt(cfg, "w", &c.Width)
	setInt(cfg, "h", &c.Height)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	setInt(cfg, "cell_size", &c.CellSize)

	p := &c.Params
	setInt(cfg, "water_level", &p.WaterLevel)
	setInt(cfg, "rock_level", &p.RockLevel)
	setInt(cfg, "snow_level", &p.SnowLevel)
	setFloat(cfg, "mountain_distance", &p.MountainFormationDistance)
	setFloat(cfg, "mountain_height", &p.MountainMaxHeight)
	setFloat(cfg, "continental_bias", &p.ContinentalBias)
	setFloat(cfg, "oceanic_bias", &p.OceanicBias)
	setFloat(cfg, "elevation_scale", &p.ElevationNoiseScale)
	setFloat(cfg, "plate_scale", &p.PlateNoiseScale)
	setFloat(cfg, "plate_distortion", &p.PlateDistortionStrength)
	if v, ok := cfg["warp_noise"]; ok && v != "" {
		p.WarpNoise = v
	}
	setInt(cfg, "octaves", &p.Octaves)
	return c
}

func setInt(cfg map[string]string, key string, dst *int) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setFloat(cfg map[string]string, key string, dst *float64) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = parsed
		}
	}
}

// Validate rejects configurations that cannot produce a well-formed world.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	}
	return c.Params.Validate()
}

// Validate checks threshold ordering and noise settings.
func (p Params) Validate() error {
	if p.WaterLevel < 0 || p.SnowLevel > 255 ||
		p.WaterLevel >= p.RockLevel || p.RockLevel >= p.SnowLevel {
		return fmt.Errorf("%w: thresholds water=%d rock=%d snow=%d must satisfy 0 <= water < rock < snow <= 255",
			ErrInvalidConfig, p.WaterLevel, p.RockLevel, p.SnowLevel)
	}
	if !(p.MountainFormationDistance > 0) {
		return fmt.Errorf("%w: mountain formation distance %v must be positive", ErrInvalidConfig, p.MountainFormationDistance)
	}
	if !(p.MountainMaxHeight >= 0) {
		return fmt.Errorf("%w: mountain max height %v must not be negative", ErrInvalidConfig, p.MountainMaxHeight)
	}
	if !(p.ElevationNoiseScale > 0) || !(p.PlateNoiseScale > 0) {
		return fmt.Errorf("%w: noise scales elevation=%v plate=%v must be positive",
			ErrInvalidConfig, p.ElevationNoiseScale, p.PlateNoiseScale)
	}
	if !(p.PlateDistortionStrength >= 0) {
		return fmt.Errorf("%w: plate distortion %v must not be negative", ErrInvalidConfig, p.PlateDistortionStrength)
	}
	if p.Octaves < 1 {
		return fmt.Errorf("%w: octaves %d must be at least 1", ErrInvalidConfig, p.Octaves)
	}
	switch p.WarpNoise {
	case WarpPerlin, WarpSimplex:
	default:
		return fmt.Errorf("%w: unknown warp noise %q", ErrInvalidConfig, p.WarpNoise)
	}
	return nil
}
