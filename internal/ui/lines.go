package ui

import (
	"fmt"

	"mad-terrain/internal/core"
	"mad-terrain/internal/render"
	"mad-terrain/internal/terrain"
)

var layerNames = map[render.Layer]string{
	render.LayerTerrain:   "terrain",
	render.LayerElevation: "elevation",
	render.LayerSurface:   "land/ocean",
}

// LayerName returns the label shown for a render layer.
func LayerName(l render.Layer) string {
	if name, ok := layerNames[l]; ok {
		return name
	}
	return "unknown"
}

// PanelLines formats the parameter snapshot and world statistics into the
// text rows shown on the HUD panel.
func PanelLines(snap core.ParameterSnapshot, stats terrain.Stats) []string {
	var lines []string
	for _, g := range snap.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %-18s %s", p.Label, p.Value))
		}
	}
	lines = append(lines,
		"World",
		fmt.Sprintf("  %-18s %.1f%%", "Land", stats.LandFraction()*100),
		fmt.Sprintf("  %-18s %d", "Rock cells", stats.Rock),
		fmt.Sprintf("  %-18s %d", "Snow cells", stats.Snow),
		fmt.Sprintf("  %-18s %d-%d", "Elevation", stats.MinElevation, stats.MaxElevation),
	)
	return lines
}
