//go:build ebiten

package ui

import (
	"mad-terrain/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay switches between map layers and labels the active one.
type Overlay struct {
	layer render.Layer
}

// NewOverlay constructs an overlay showing the terrain layer.
func NewOverlay() *Overlay {
	return &Overlay{layer: render.LayerTerrain}
}

// Update handles the layer hotkeys.
func (o *Overlay) Update() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		o.layer = render.LayerTerrain
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		o.layer = render.LayerElevation
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		o.layer = render.LayerSurface
	}
}

// Layer returns the active layer.
func (o *Overlay) Layer() render.Layer { return o.layer }

// Draw prints the active layer in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "layer: "+LayerName(o.layer)+" [1-3]", 4, 4)
}
