package terrain

import "mad-terrain/internal/world"

// Stats summarizes a generated grid.
type Stats struct {
	Cells int
	Land  int
	Ocean int
	Rock  int
	Snow  int

	MinElevation  uint8
	MaxElevation  uint8
	MeanElevation float64
}

// LandFraction returns the share of land cells.
func (s Stats) LandFraction() float64 {
	if s.Cells == 0 {
		return 0
	}
	return float64(s.Land) / float64(s.Cells)
}

// Summarize counts surface kinds and elevation bands across grid.
func Summarize(grid *world.Grid, p Params) Stats {
	cells := grid.Cells()
	s := Stats{Cells: len(cells)}
	if len(cells) == 0 {
		return s
	}
	s.MinElevation = 255
	total := 0
	for _, c := range cells {
		e := int(c.Elevation)
		total += e
		if c.Elevation < s.MinElevation {
			s.MinElevation = c.Elevation
		}
		if c.Elevation > s.MaxElevation {
			s.MaxElevation = c.Elevation
		}
		if c.Surface == world.Ocean {
			s.Ocean++
			continue
		}
		s.Land++
		switch {
		case e >= p.SnowLevel:
			s.Snow++
		case e >= p.RockLevel:
			s.Rock++
		}
	}
	s.MeanElevation = float64(total) / float64(len(cells))
	return s
}
