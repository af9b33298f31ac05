// Command mazegen prints a generated maze, optionally with its shortest path.
//
// Settings come from MAZE_* environment variables (a .env file in the working
// directory is loaded first, if present) and are overridden by flags:
//
//	mazegen -algorithm kruskal -width 31 -height 15 -seed 7 -path
//	mazegen -randomize -seed 42 -doors -path
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazegen/maze"
	"github.com/katalvlaran/mazegen/rng"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug(".env file not found or could not be loaded")
	}
	if err := run(os.Args[1:], os.LookupEnv, os.Stdout, log); err != nil {
		log.WithError(err).Fatal("mazegen failed")
	}
}

func run(args []string, lookup lookupFunc, out io.Writer, log *logrus.Logger) error {
	base, err := fromEnv(lookup)
	if err != nil {
		return err
	}
	s, err := parseFlags(args, base, log.Out)
	if err != nil {
		return err
	}
	log.SetLevel(s.LogLevel)

	b := maze.NewBuilder(maze.WithLogger(log))
	var res *maze.Result
	if s.Randomize {
		_, res, err = b.Randomize(s.config(), rng.New(s.Seed))
	} else {
		res, err = b.Build(s.config())
	}
	if err != nil {
		return err
	}

	fmt.Fprint(out, res.Render(s.Glyphs))
	c := res.Config
	fmt.Fprintf(out, "algorithm: %s size: %s seed: %d\n", c.Algorithm, c.Size, c.Seed)
	if res.Entrance != nil {
		fmt.Fprintf(out, "entrance: %s facing %s, exit: %s facing %s\n",
			res.Entrance.Cell, res.Entrance.Facing, res.Exit.Cell, res.Exit.Facing)
	}
	if c.GeneratePath {
		if res.Path == nil {
			fmt.Fprintln(out, "path: none")
		} else {
			fmt.Fprintf(out, "path length: %d\n", res.PathLength)
		}
	}
	return nil
}
