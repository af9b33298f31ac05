package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazegen/generator"
	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/layout"
	"github.com/katalvlaran/mazegen/maze"
)

// Environment variables read before flags. Flags win.
const (
	envAlgorithm = "MAZE_ALGORITHM"
	envWidth     = "MAZE_WIDTH"
	envHeight    = "MAZE_HEIGHT"
	envSeed      = "MAZE_SEED"
	envPath      = "MAZE_PATH"
	envLogLevel  = "MAZE_LOG_LEVEL"
)

// settings holds the resolved command line configuration.
type settings struct {
	Algorithm generator.Algorithm
	Width     int
	Height    int
	Seed      int64
	Path      bool
	Doors     bool
	Randomize bool
	LogLevel  logrus.Level
	Glyphs    grid.Glyphs
}

// lookupFunc matches os.LookupEnv.
type lookupFunc func(key string) (string, bool)

func defaultSettings() settings {
	d := maze.DefaultConfig()
	return settings{
		Algorithm: d.Algorithm,
		Width:     d.Size.Width,
		Height:    d.Size.Height,
		Seed:      d.Seed,
		LogLevel:  logrus.InfoLevel,
		Glyphs:    grid.DefaultGlyphs(),
	}
}

// fromEnv overlays environment values on the defaults.
func fromEnv(lookup lookupFunc) (settings, error) {
	s := defaultSettings()
	if v, ok := lookup(envAlgorithm); ok {
		a, err := generator.ParseAlgorithm(v)
		if err != nil {
			return s, fmt.Errorf("%s: %w", envAlgorithm, err)
		}
		s.Algorithm = a
	}
	var err error
	if s.Width, err = envInt(lookup, envWidth, s.Width); err != nil {
		return s, err
	}
	if s.Height, err = envInt(lookup, envHeight, s.Height); err != nil {
		return s, err
	}
	if v, ok := lookup(envSeed); ok {
		if s.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return s, fmt.Errorf("%s must be an integer: %w", envSeed, err)
		}
	}
	if v, ok := lookup(envPath); ok {
		if s.Path, err = strconv.ParseBool(v); err != nil {
			return s, fmt.Errorf("%s must be a boolean: %w", envPath, err)
		}
	}
	if v, ok := lookup(envLogLevel); ok {
		if s.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return s, fmt.Errorf("%s: %w", envLogLevel, err)
		}
	}
	return s, nil
}

func envInt(lookup lookupFunc, key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

// parseFlags applies command line flags on top of base.
func parseFlags(args []string, base settings, stderr io.Writer) (settings, error) {
	s := base
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.TextVar(&s.Algorithm, "algorithm", base.Algorithm, "generation algorithm")
	fs.IntVar(&s.Width, "width", base.Width, "grid width in cells")
	fs.IntVar(&s.Height, "height", base.Height, "grid height in cells")
	fs.Int64Var(&s.Seed, "seed", base.Seed, "generation seed (with -randomize, the seed of the parameter draw)")
	fs.BoolVar(&s.Path, "path", base.Path, "draw the shortest path between the doors")
	fs.BoolVar(&s.Doors, "doors", base.Doors, "place an entrance and an exit")
	fs.BoolVar(&s.Randomize, "randomize", base.Randomize, "draw algorithm, size and seed at random")
	fs.TextVar(&s.LogLevel, "log-level", base.LogLevel, "logrus level")
	fs.StringVar(&s.Glyphs.Wall, "wall", base.Glyphs.Wall, "wall glyph")
	fs.StringVar(&s.Glyphs.Floor, "floor", base.Glyphs.Floor, "floor glyph")
	fs.StringVar(&s.Glyphs.Path, "path-glyph", base.Glyphs.Path, "path glyph")
	if err := fs.Parse(args); err != nil {
		return base, err
	}
	if fs.NArg() > 0 {
		return base, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return s, nil
}

// config converts settings into a build configuration. Doors and path
// endpoints default to the corners.
func (s settings) config() maze.Config {
	cfg := maze.DefaultConfig()
	cfg.Algorithm = s.Algorithm
	cfg.Seed = s.Seed
	cfg.Size = grid.Size{Width: s.Width, Height: s.Height}
	cfg.GeneratePath = s.Path
	cfg.CreateDoors = s.Doors
	cfg.PathStart, cfg.PathEnd = layout.Corners(cfg.Size)
	cfg.Entrance, cfg.Exit = cfg.PathStart, cfg.PathEnd
	return cfg
}
