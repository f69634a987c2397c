package terrain

import (
	"fmt"
	"slices"

	"mad-terrain/internal/core"
	"mad-terrain/internal/noise"
	pcore "mad-terrain/pkg/core"
)

// PlateKind classifies a tectonic plate.
type PlateKind uint8

const (
	Oceanic PlateKind = iota
	Continental
)

var plateKinds = [...]PlateKind{Oceanic, Continental}

func (k PlateKind) String() string {
	switch k {
	case Oceanic:
		return "oceanic"
	case Continental:
		return "continental"
	default:
		return "unknown"
	}
}

// PlateSample is the plate identifier and boundary distance of one cell.
type PlateSample struct {
	ID           float64
	EdgeDistance float64
}

// Key returns the canonical plate id: the identifier truncated to an
// unsigned integer.
func (s PlateSample) Key() uint32 {
	if s.ID <= 0 {
		return 0
	}
	return uint32(s.ID)
}

// PlateField holds per-cell plate samples and the kind of every plate.
type PlateField struct {
	samples []PlateSample
	kinds   map[uint32]PlateKind
}

// NewPlateField wraps precomputed samples and plate kinds.
func NewPlateField(samples []PlateSample, kinds map[uint32]PlateKind) PlateField {
	return PlateField{samples: samples, kinds: kinds}
}

// GeneratePlates samples cells at the warped point of every grid cell and
// assigns each discovered plate a kind drawn from rng.
func GeneratePlates(cells noise.Cellular, warp *noise.Warp, rng *pcore.RNG, size core.Size, scale float64) PlateField {
	samples := make([]PlateSample, size.Len())
	for i := range samples {
		x, y := core.IndexToCoords(i, size.W)
		px, py := warp.Apply(float64(x)/scale, float64(y)/scale)
		id, edge := cells.Sample(px, py)
		samples[i] = PlateSample{ID: id, EdgeDistance: edge}
	}
	return PlateField{samples: samples, kinds: AssignKinds(samples, rng)}
}

// AssignKinds draws one kind per distinct plate key. Keys are visited in
// ascending order, so the result depends only on the keys and the rng state.
func AssignKinds(samples []PlateSample, rng *pcore.RNG) map[uint32]PlateKind {
	seen := make(map[uint32]struct{})
	var keys []uint32
	for _, s := range samples {
		k := s.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	kinds := make(map[uint32]PlateKind, len(keys))
	for _, k := range keys {
		kinds[k] = plateKinds[rng.Choose(len(plateKinds))]
	}
	return kinds
}

// Len returns the number of samples.
func (f PlateField) Len() int { return len(f.samples) }

// SampleAt returns the plate sample at index i.
func (f PlateField) SampleAt(i int) PlateSample { return f.samples[i] }

// PlateCount returns the number of distinct plates.
func (f PlateField) PlateCount() int { return len(f.kinds) }

// KindAt returns the kind of the plate covering index i.
func (f PlateField) KindAt(i int) (PlateKind, error) {
	key := f.samples[i].Key()
	kind, ok := f.kinds[key]
	if !ok {
		return 0, fmt.Errorf("%w: plate %d at cell %d", ErrUnassignedPlate, key, i)
	}
	return kind, nil
}

// EdgeDistanceAt returns the distance to the nearest plate boundary at index i.
func (f PlateField) EdgeDistanceAt(i int) float64 { return f.samples[i].EdgeDistance }
