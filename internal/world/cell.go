package world

import (
	"image/color"
	"strings"
)

// SurfaceKind classifies a cell as land or ocean.
type SurfaceKind uint8

const (
	// Land is any cell at or above the water level.
	Land SurfaceKind = iota
	// Ocean is any cell below the water level.
	Ocean
)

func (k SurfaceKind) String() string {
	switch k {
	case Land:
		return "land"
	case Ocean:
		return "ocean"
	default:
		return "unknown"
	}
}

// Properties is a bit-set of terrain features. Generation never sets any of
// them; they are reserved for richer terrain rules.
type Properties uint32

const (
	HasRiver Properties = 1 << iota
	HasMountain
	HasForest
	HasSettlement
	HasFarmland
)

var propertyNames = []struct {
	flag Properties
	name string
}{
	{HasRiver, "river"},
	{HasMountain, "mountain"},
	{HasForest, "forest"},
	{HasSettlement, "settlement"},
	{HasFarmland, "farmland"},
}

// Has reports whether every flag in f is set.
func (p Properties) Has(f Properties) bool { return p&f == f }

// Set returns p with f added.
func (p Properties) Set(f Properties) Properties { return p | f }

// Clear returns p with f removed.
func (p Properties) Clear(f Properties) Properties { return p &^ f }

func (p Properties) String() string {
	if p == 0 {
		return "none"
	}
	var parts []string
	for _, pn := range propertyNames {
		if p.Has(pn.flag) {
			parts = append(parts, pn.name)
		}
	}
	return strings.Join(parts, "|")
}

// Cell is the terrain record for one grid position.
type Cell struct {
	Elevation  uint8
	Surface    SurfaceKind
	Color      color.RGBA
	Properties Properties
}

// DefaultCell is the state of every cell before generation runs.
func DefaultCell() Cell {
	return Cell{
		Elevation: 1,
		Surface:   Land,
		Color:     color.RGBA{A: 255},
	}
}
