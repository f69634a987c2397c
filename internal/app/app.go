//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"mad-terrain/internal/render"
	"mad-terrain/internal/terrain"
	"mad-terrain/internal/ui"
	"mad-terrain/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game presents a generated world through the ebiten.Game interface.
type Game struct {
	cfg terrain.Config
	log *slog.Logger

	grid    *world.Grid
	stats   terrain.Stats
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
}

// New generates the initial world and wraps it in a Game.
func New(cfg terrain.Config, hudWidth int, log *slog.Logger) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		log:     log,
		painter: render.NewGridPainter(cfg.Width, cfg.Height),
		overlay: ui.NewOverlay(),
	}
	if hudWidth > 0 {
		g.hud = ui.NewHUD(hudWidth)
	}
	if err := g.Regenerate(cfg.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Regenerate replaces the world with one generated from seed.
func (g *Game) Regenerate(seed int64) error {
	cfg := g.cfg
	cfg.Seed = seed
	gen, err := terrain.NewGenerator(cfg, g.log)
	if err != nil {
		return err
	}
	grid, err := gen.Generate()
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.grid = grid
	g.stats = terrain.Summarize(grid, cfg.Params)
	g.painter.Invalidate()
	g.hud.Update(cfg.Parameters(), g.stats)
	return nil
}

// Update handles hotkeys: Q/Esc quit, N next seed, S time-based seed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := g.Regenerate(g.cfg.Seed + 1); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Regenerate(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	g.overlay.Update()
	g.painter.SetLayer(g.overlay.Layer())
	return nil
}

// Draw renders the world, the layer label and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grid, g.cfg.CellSize)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.cfg.Width*g.cfg.CellSize, g.cfg.Height*g.cfg.CellSize)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width*g.cfg.CellSize + g.hud.Width(), g.cfg.Height * g.cfg.CellSize
}
