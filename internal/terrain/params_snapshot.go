package terrain

import (
	"strconv"

	"mad-terrain/internal/core"
)

// Parameters describes the configuration for HUD panels and log lines.
func (c Config) Parameters() core.ParameterSnapshot {
	p := c.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				int64Param("seed", "Seed", c.Seed),
				intParam("cell_size", "Cell size", c.CellSize),
			},
		},
		{
			Name: "Thresholds",
			Params: []core.Parameter{
				intParam("water_level", "Water level", p.WaterLevel),
				intParam("rock_level", "Rock level", p.RockLevel),
				intParam("snow_level", "Snow level", p.SnowLevel),
			},
		},
		{
			Name: "Plates",
			Params: []core.Parameter{
				floatParam("mountain_distance", "Mountain distance", p.MountainFormationDistance),
				floatParam("mountain_height", "Mountain height", p.MountainMaxHeight),
				floatParam("continental_bias", "Continental bias", p.ContinentalBias),
				floatParam("oceanic_bias", "Oceanic bias", p.OceanicBias),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				floatParam("elevation_scale", "Elevation scale", p.ElevationNoiseScale),
				floatParam("plate_scale", "Plate scale", p.PlateNoiseScale),
				floatParam("plate_distortion", "Plate distortion", p.PlateDistortionStrength),
				{Key: "warp_noise", Label: "Warp noise", Type: core.ParamTypeString, Value: p.WarpNoise},
				intParam("octaves", "Octaves", p.Octaves),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
