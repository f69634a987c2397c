package terrain

import (
	"log/slog"
	"time"

	"mad-terrain/internal/core"
	"mad-terrain/internal/noise"
	"mad-terrain/internal/world"
	pcore "mad-terrain/pkg/core"
)

// Generator produces complete worlds from a validated Config.
type Generator struct {
	cfg Config
	log *slog.Logger
}

// NewGenerator validates cfg. A nil logger falls back to slog.Default.
func NewGenerator(cfg Config, log *slog.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Generator{cfg: cfg, log: log}, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config { return g.cfg }

// Generate builds a fully synthesized grid. The result depends only on the
// configuration.
func (g *Generator) Generate() (*world.Grid, error) {
	cfg := g.cfg
	p := cfg.Params
	size := core.Size{W: cfg.Width, H: cfg.Height}

	grid, err := world.New(size.W, size.H)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	elev := GenerateElevation(noise.NewPerlin(cfg.Seed, p.Octaves), size, p.ElevationNoiseScale)
	g.log.Debug("elevation field generated", "cells", elev.Len(), "elapsed", time.Since(start))

	start = time.Now()
	warp := noise.NewWarp(g.warpSource(), p.PlateDistortionStrength)
	plates := GeneratePlates(noise.NewWorley(cfg.Seed), warp, pcore.NewRNG(cfg.Seed), size, p.PlateNoiseScale)
	g.log.Debug("plate field generated", "plates", plates.PlateCount(), "elapsed", time.Since(start))

	start = time.Now()
	if err := Synthesize(grid, elev, plates, p); err != nil {
		return nil, err
	}
	g.log.Debug("terrain synthesized", "elapsed", time.Since(start))

	stats := Summarize(grid, p)
	g.log.Info("world generated",
		"w", size.W,
		"h", size.H,
		"seed", cfg.Seed,
		"plates", plates.PlateCount(),
		"land_fraction", stats.LandFraction(),
		"min_elevation", stats.MinElevation,
		"max_elevation", stats.MaxElevation,
	)
	return grid, nil
}

// warpSource is seeded apart from the elevation noise so plate boundaries
// do not follow coastlines.
func (g *Generator) warpSource() noise.Fractal {
	seed := g.cfg.Seed + 1
	if g.cfg.Params.WarpNoise == WarpSimplex {
		return noise.NewSimplex(seed, g.cfg.Params.Octaves)
	}
	return noise.NewPerlin(seed, g.cfg.Params.Octaves)
}

// GenerateWorld builds a w by h world with the default parameters.
func GenerateWorld(w, h int) (*world.Grid, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	gen, err := NewGenerator(cfg, nil)
	if err != nil {
		return nil, err
	}
	return gen.Generate()
}
