// Package noise provides the coherent noise primitives used by terrain
// generation: fractal (multi-octave) gradient noise, cell-partitioning
// (Worley) noise and domain warping.
package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Fractal is a layered coherent noise source sampled in 2D. Values are
// nominally in [-1, 1].
type Fractal interface {
	Eval2(x, y float64) float64
}

const (
	// Persistence divisor between successive octaves.
	defaultAlpha = 2.0
	// Frequency multiplier between successive octaves.
	defaultBeta = 2.0
)

// Perlin is fractal Brownian motion over Perlin gradient noise.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin builds a Perlin fBm with the given number of octaves.
func NewPerlin(seed int64, octaves int) *Perlin {
	if octaves < 1 {
		octaves = 1
	}
	return &Perlin{p: perlin.NewPerlin(defaultAlpha, defaultBeta, int32(octaves), seed)}
}

// Eval2 samples the noise at (x, y).
func (p *Perlin) Eval2(x, y float64) float64 {
	return p.p.Noise2D(x, y)
}

// Simplex is fractal Brownian motion over OpenSimplex noise. The octave sum
// is divided by the total amplitude so results stay within [-1, 1].
type Simplex struct {
	n       opensimplex.Noise
	octaves int
	norm    float64
}

// NewSimplex builds a Simplex fBm with the given number of octaves.
func NewSimplex(seed int64, octaves int) *Simplex {
	if octaves < 1 {
		octaves = 1
	}
	norm, amp := 0.0, 1.0
	for i := 0; i < octaves; i++ {
		norm += amp
		amp /= defaultAlpha
	}
	return &Simplex{n: opensimplex.New(seed), octaves: octaves, norm: norm}
}

// Eval2 samples the noise at (x, y).
func (s *Simplex) Eval2(x, y float64) float64 {
	sum, amp := 0.0, 1.0
	for i := 0; i < s.octaves; i++ {
		sum += s.n.Eval2(x, y) * amp
		amp /= defaultAlpha
		x *= defaultBeta
		y *= defaultBeta
	}
	return sum / s.norm
}
