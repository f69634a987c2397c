package app

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"mad-terrain/internal/terrain"
)

// Overrides collects repeated -set key=value flags.
type Overrides map[string]string

func (o Overrides) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + o[k]
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (o Overrides) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	o[key] = value
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	Seed     int64
	Scale    int
	HUDWidth int
	Verbose  bool
	Out      string

	Overrides Overrides
}

// NewConfig returns a Config populated from the terrain defaults.
func NewConfig() *Config {
	d := terrain.DefaultConfig()
	return &Config{
		Width:     d.Width,
		Height:    d.Height,
		Seed:      d.Seed,
		Scale:     d.CellSize,
		HUDWidth:  260,
		Overrides: Overrides{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "world width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "world height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "world seed")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")
	fs.StringVar(&c.Out, "out", c.Out, "write a PNG snapshot to this path")
	fs.Var(c.Overrides, "set", "terrain parameter override key=value (repeatable)")
}

// Terrain builds the generator configuration. Named flags that were set
// explicitly on fs win over -set overrides for the same key.
func (c *Config) Terrain(fs *flag.FlagSet) terrain.Config {
	cfg := terrain.FromMap(c.Overrides)
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if explicit["w"] {
		cfg.Width = c.Width
	}
	if explicit["h"] {
		cfg.Height = c.Height
	}
	if explicit["seed"] {
		cfg.Seed = c.Seed
	}
	if explicit["scale"] {
		cfg.CellSize = c.Scale
	}
	return cfg
}

// NewLogger returns the text logger used by the commands.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
