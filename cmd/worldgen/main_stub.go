//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"mad-terrain/internal/app"
	"mad-terrain/internal/render"
	"mad-terrain/internal/terrain"
)

// Headless build: generate, log a summary and optionally write a PNG.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := app.NewLogger(cfg.Verbose)
	tc := cfg.Terrain(flag.CommandLine)
	log.Debug("terrain config", tc.Parameters().LogAttrs()...)

	gen, err := terrain.NewGenerator(tc, log)
	if err != nil {
		log.Error("configure generator", "error", err)
		os.Exit(1)
	}
	grid, err := gen.Generate()
	if err != nil {
		log.Error("generate world", "error", err)
		os.Exit(1)
	}

	if cfg.Out == "" {
		fmt.Fprintln(os.Stderr, "No -out path given; the interactive viewer requires the ebiten build tag.")
		fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/worldgen` or pass -out world.png.")
		return
	}
	if err := writePNG(cfg.Out, render.ToImage(grid, tc.CellSize, render.LayerTerrain)); err != nil {
		log.Error("write snapshot", "path", cfg.Out, "error", err)
		os.Exit(1)
	}
	log.Info("snapshot written", "path", cfg.Out)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
