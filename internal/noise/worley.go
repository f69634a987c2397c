package noise

import "math"

// Cellular is a cell-partitioning noise. Sample returns the identifier value
// of the nearest feature point together with the distance from (x, y) to the
// nearest cell boundary, both computed from the same query point.
type Cellular interface {
	Sample(x, y float64) (value, edge float64)
}

// IDRange bounds identifier values returned by Worley: [0, IDRange).
const IDRange = 1 << 16

// searchRadius covers every lattice cell whose feature point can be the
// first or second nearest to a query point.
const searchRadius = 2

// Worley scatters one jittered feature point per unit lattice cell.
type Worley struct {
	seed uint64
}

// NewWorley returns Worley noise seeded with seed.
func NewWorley(seed int64) *Worley {
	return &Worley{seed: mix64(uint64(seed))}
}

// Sample implements Cellular. The identifier's integer part is the nearest
// feature point's key; its fractional part varies per point, so truncating
// collapses a whole cell to one key. The edge distance is (F2-F1)/2, which
// is zero on the bisector between the two nearest feature points.
func (w *Worley) Sample(x, y float64) (float64, float64) {
	cx, cy := int64(math.Floor(x)), int64(math.Floor(y))

	f1, f2 := math.Inf(1), math.Inf(1)
	var nearest uint64
	for oy := int64(-searchRadius); oy <= searchRadius; oy++ {
		for ox := int64(-searchRadius); ox <= searchRadius; ox++ {
			h := w.hash(cx+ox, cy+oy)
			px := float64(cx+ox) + unit(h)
			py := float64(cy+oy) + unit(mix64(h))
			d := math.Hypot(px-x, py-y)
			switch {
			case d < f1:
				f2 = f1
				f1 = d
				nearest = h
			case d < f2:
				f2 = d
			}
		}
	}

	key := float64(nearest >> 48)
	frac := float64((nearest>>32)&0xffff) / IDRange
	return key + frac, (f2 - f1) / 2
}

// Value returns the identifier value at (x, y).
func (w *Worley) Value(x, y float64) float64 {
	v, _ := w.Sample(x, y)
	return v
}

// Distance returns the boundary distance at (x, y).
func (w *Worley) Distance(x, y float64) float64 {
	_, d := w.Sample(x, y)
	return d
}

func (w *Worley) hash(cx, cy int64) uint64 {
	h := w.seed ^ uint64(cx)*0x9e3779b97f4a7c15 ^ uint64(cy)*0xc2b2ae3d27d4eb4f
	return mix64(h)
}

// mix64 is the splitmix64 finalizer.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// unit maps the low 32 bits of h into [0, 1).
func unit(h uint64) float64 {
	return float64(h&0xffffffff) / (1 << 32)
}
