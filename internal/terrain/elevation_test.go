package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-terrain/internal/core"
)

type coordFractal struct{}

func (coordFractal) Eval2(x, y float64) float64 { return x*1000 + y }

func TestNormalizeSample(t *testing.T) {
	cases := []struct {
		sample float64
		want   uint8
	}{
		{-1, 0},
		{1, 255},
		{0, 128},
		{0.5, 191},
		{-0.5, 64},
		{-2, 0},
		{3, 255},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeSample(tc.sample), "sample %v", tc.sample)
	}
}

func TestElevationFieldAccessors(t *testing.T) {
	f := NewElevationField([]float64{-1, 0, 1})
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, 0.0, f.Raw(0))
	assert.Equal(t, 127.5, f.Raw(1))
	assert.Equal(t, 255.0, f.Raw(2))
	assert.Equal(t, uint8(128), f.ElevationAt(1))
	assert.Equal(t, 1.0, f.Sample(2))
}

func TestGenerateElevationRowMajorScaled(t *testing.T) {
	size := core.Size{W: 4, H: 3}
	f := GenerateElevation(coordFractal{}, size, 2)
	require.Equal(t, 12, f.Len())
	for i := 0; i < f.Len(); i++ {
		x, y := core.IndexToCoords(i, size.W)
		assert.Equal(t, float64(x)/2*1000+float64(y)/2, f.Sample(i))
	}
}
