// Package terrain builds terrain maps: a fractal elevation field, a warped
// tectonic plate field and the rules that combine them into cells.
package terrain

import (
	"math"

	"mad-terrain/internal/core"
	"mad-terrain/internal/noise"
)

// ElevationField holds one raw fractal noise sample per cell, nominally in
// [-1, 1].
type ElevationField struct {
	samples []float64
}

// NewElevationField wraps precomputed samples.
func NewElevationField(samples []float64) ElevationField {
	return ElevationField{samples: samples}
}

// GenerateElevation samples src at (x/scale, y/scale) for every cell in
// row-major order.
func GenerateElevation(src noise.Fractal, size core.Size, scale float64) ElevationField {
	samples := make([]float64, size.Len())
	for i := range samples {
		x, y := core.IndexToCoords(i, size.W)
		samples[i] = src.Eval2(float64(x)/scale, float64(y)/scale)
	}
	return ElevationField{samples: samples}
}

// Len returns the number of samples.
func (f ElevationField) Len() int { return len(f.samples) }

// Sample returns the raw noise value at index i.
func (f ElevationField) Sample(i int) float64 { return f.samples[i] }

// Raw returns the unclamped real-valued elevation at index i.
func (f ElevationField) Raw(i int) float64 { return rawElevation(f.samples[i]) }

// ElevationAt returns the 8-bit elevation at index i.
func (f ElevationField) ElevationAt(i int) uint8 { return NormalizeSample(f.samples[i]) }

// NormalizeSample maps a noise sample onto the 8-bit elevation scale as
// clamp(round((s+1)*127.5), 0, 255). Halves round away from zero, so 0
// maps to 128.
func NormalizeSample(s float64) uint8 {
	return clampByte(math.Round(rawElevation(s)))
}

func rawElevation(s float64) float64 { return (s + 1) * 127.5 }

// clampByte clamps v to [0, 255] and truncates.
func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
