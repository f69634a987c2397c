package noise

// Warp offsets for the second lookup decorrelate dy from dx.
const (
	warpFrequency = 2.0
	warpOffsetX   = 5.3
	warpOffsetY   = -1.7
)

// Warp perturbs sample coordinates with two lookups into a fractal field.
type Warp struct {
	src      Fractal
	strength float64
}

// NewWarp returns a domain warper over src scaled by strength.
func NewWarp(src Fractal, strength float64) *Warp {
	return &Warp{src: src, strength: strength}
}

// Offset returns the displacement applied to (x, y).
func (w *Warp) Offset(x, y float64) (float64, float64) {
	fx, fy := x*warpFrequency, y*warpFrequency
	dx := w.src.Eval2(fx, fy) * w.strength
	dy := w.src.Eval2(fx+warpOffsetX, fy+warpOffsetY) * w.strength
	return dx, dy
}

// Apply returns the warped point.
func (w *Warp) Apply(x, y float64) (float64, float64) {
	dx, dy := w.Offset(x, y)
	return x + dx, y + dy
}
