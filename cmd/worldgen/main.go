//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"
	"strconv"

	"mad-terrain/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := app.NewLogger(cfg.Verbose)
	tc := cfg.Terrain(flag.CommandLine)

	game, err := app.New(tc, cfg.HUDWidth, log)
	if err != nil {
		log.Error("generate world", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowTitle("mad-terrain — seed " + strconv.FormatInt(tc.Seed, 10))
	ebiten.SetWindowSize(tc.Width*tc.CellSize+max(cfg.HUDWidth, 0), tc.Height*tc.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run game", "error", err)
		os.Exit(1)
	}
}
