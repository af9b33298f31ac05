package maze

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazegen/generator"
	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/layout"
	"github.com/katalvlaran/mazegen/pathfind"
	"github.com/katalvlaran/mazegen/rng"
)

// doorStream identifies the substream Randomize draws edge doors from.
const doorStream = 1

// Builder runs builds. It holds no per-build state and may be shared by
// concurrent goroutines as long as its logger and metrics are.
type Builder struct {
	log     logrus.FieldLogger
	metrics *Metrics
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger. A nil logger keeps the default, which discards
// everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithMetrics records every build in m.
func WithMetrics(m *Metrics) Option {
	return func(b *Builder) { b.metrics = m }
}

// NewBuilder returns a Builder configured by opts.
func NewBuilder(opts ...Option) *Builder {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	b := &Builder{log: discard}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build generates the maze described by cfg and, when requested, its path,
// doors and endpoint.
func (b *Builder) Build(cfg Config) (*Result, error) {
	return b.build(cfg, nil, algorithmLabel(cfg.Algorithm))
}

// BuildGrid runs the path, door and endpoint steps of Build on a grid the
// caller already has, such as a hand-drawn layout. cfg.Algorithm and cfg.Seed
// are ignored and cfg.Size is taken from g. g is not modified; with
// ConnectRegions the Result holds a repaired copy.
func (b *Builder) BuildGrid(cfg Config, g *grid.Grid) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("maze: %w", pathfind.ErrNilGrid)
	}
	cfg.Size = g.Size()
	return b.build(cfg, g.Clone(), CustomLabel)
}

// Randomize replaces the algorithm, size and seed of cfg with values drawn
// from s, chooses path endpoints and builds. With ForceEdgeDoors the
// endpoints are two random edge floor cells drawn from a substream of s
// (doorStream), falling back to the corners when fewer than two exist;
// otherwise they are the corners. The returned Config
// is the one that was built.
func (b *Builder) Randomize(cfg Config, s *rng.Stream) (Config, *Result, error) {
	if s == nil {
		return cfg, nil, ErrNilStream
	}
	p := layout.RandomParams(s)
	cfg.Algorithm, cfg.Size, cfg.Seed = p.Algorithm, p.Size, p.Seed

	var g *grid.Grid
	if cfg.ForceEdgeDoors {
		var err error
		g, err = b.generate(cfg, b.log)
		if err != nil {
			return cfg, nil, err
		}
		in, out, ok := layout.EdgeDoors(g, s.Derive(doorStream))
		if ok {
			cfg.PathStart, cfg.PathEnd = in, out
		} else {
			b.log.WithField("size", cfg.Size.String()).Warn("not enough edge floor cells, using corners")
			cfg.PathStart, cfg.PathEnd = layout.Corners(cfg.Size)
		}
	} else {
		cfg.PathStart, cfg.PathEnd = layout.Corners(cfg.Size)
	}

	res, err := b.build(cfg, g, algorithmLabel(cfg.Algorithm))
	if err != nil {
		return cfg, nil, err
	}
	return res.Config, res, nil
}

// build runs cfg, reusing g when it was already generated for cfg. label
// names the grid source in logs and metrics.
func (b *Builder) build(cfg Config, g *grid.Grid, label string) (*Result, error) {
	res := &Result{ID: uuid.New()}
	log := b.log.WithFields(logrus.Fields{
		"build":     res.ID.String(),
		"algorithm": label,
		"size":      cfg.Size.String(),
		"seed":      cfg.Seed,
	})

	if g == nil {
		var err error
		if g, err = b.generate(cfg, log); err != nil {
			return nil, err
		}
	}
	res.Grid = g
	res.Report = pathfind.Analyze(g)
	if !res.Report.Perfect {
		log.WithFields(logrus.Fields{
			"floors":     res.Report.FloorCells,
			"edges":      res.Report.Edges,
			"components": res.Report.Components,
		}).Warn("grid is not a perfect maze")
	}
	if cfg.ConnectRegions && res.Report.Components > 1 {
		joined, opened, err := pathfind.ConnectAll(g)
		if err != nil {
			b.metrics.observeBuild(label, OutcomeError)
			return nil, fmt.Errorf("maze: connect regions: %w", err)
		}
		log.WithFields(logrus.Fields{
			"regions": res.Report.Components,
			"opened":  len(opened),
		}).Info("connected floor regions")
		res.Grid, res.Opened = joined, opened
		res.Report = pathfind.Analyze(joined)
		g = joined
	}

	outcome := OutcomeOK
	if cfg.GeneratePath {
		cfg.PathStart = cfg.PathStart.Clamp(cfg.Size)
		cfg.PathEnd = cfg.PathEnd.Clamp(cfg.Size)
		log.WithFields(logrus.Fields{
			"start":       cfg.PathStart.String(),
			"start_floor": g.IsFloor(cfg.PathStart),
			"end":         cfg.PathEnd.String(),
			"end_floor":   g.IsFloor(cfg.PathEnd),
		}).Debug("path endpoints")

		path, err := pathfind.FindPath(g, cfg.PathStart, cfg.PathEnd)
		switch {
		case errors.Is(err, pathfind.ErrNotReachable):
			log.WithError(err).Warn("no path between endpoints")
			b.metrics.observeUnreachable()
			outcome = OutcomeUnreachable
		case err != nil:
			b.metrics.observeBuild(label, OutcomeError)
			return nil, fmt.Errorf("maze: path search: %w", err)
		default:
			res.Path = path
			res.PathLength = path.Length
			b.metrics.observePath(path.Length)
		}
	}

	if cfg.CreateDoors {
		if cfg.GeneratePath {
			cfg.Entrance, cfg.Exit = cfg.PathStart, cfg.PathEnd
		} else {
			cfg.Entrance = cfg.Entrance.Clamp(cfg.Size)
			cfg.Exit = cfg.Exit.Clamp(cfg.Size)
		}
		res.Entrance = &Door{Cell: cfg.Entrance, Facing: layout.FacingInto(cfg.Entrance, cfg.Size)}
		res.Exit = &Door{Cell: cfg.Exit, Facing: layout.FacingInto(cfg.Exit, cfg.Size)}
	}
	if cfg.HasEndpoint {
		cfg.Endpoint = cfg.Endpoint.Clamp(cfg.Size)
		endpoint := cfg.Endpoint
		res.Endpoint = &endpoint
	}

	res.Config = cfg
	b.metrics.observeBuild(label, outcome)
	log.WithFields(logrus.Fields{
		"floors":      res.Report.FloorCells,
		"path_length": res.PathLength,
	}).Info("maze built")
	return res, nil
}

func (b *Builder) generate(cfg Config, log logrus.FieldLogger) (*grid.Grid, error) {
	start := time.Now()
	g, err := generator.Generate(cfg.Algorithm, cfg.Size, cfg.Seed)
	if err != nil {
		b.metrics.observeBuild(algorithmLabel(cfg.Algorithm), OutcomeError)
		log.WithError(err).Error("maze generation failed")
		return nil, fmt.Errorf("maze: %w", err)
	}
	b.metrics.observeGeneration(cfg.Algorithm, time.Since(start))
	return g, nil
}
