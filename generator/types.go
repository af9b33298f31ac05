package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazegen/grid"
)

// ErrUnknownAlgorithm is returned for an Algorithm value or name outside the enumeration.
var ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")

// Algorithm selects a generation strategy.
type Algorithm uint8

const (
	// Backtracker is a randomized depth-first carve with an explicit stack.
	Backtracker Algorithm = iota
	// Division splits an open field with walls that keep one passage each.
	Division
	// HuntAndKill walks randomly and, when stuck, hunts for the first unvisited
	// cell bordering the carved region.
	HuntAndKill
	// Sidewinder carves rows of east-west runs, each opened north once.
	Sidewinder
	// Kruskal removes walls in random order between disjoint sets.
	Kruskal
	// Eller builds row by row with per-row set merging and vertical drops.
	Eller
	// Prim grows the carved region from a random frontier.
	Prim
)

var algorithmNames = [...]string{
	Backtracker: "backtracker",
	Division:    "division",
	HuntAndKill: "hunt-and-kill",
	Sidewinder:  "sidewinder",
	Kruskal:     "kruskal",
	Eller:       "eller",
	Prim:        "prim",
}

// Algorithms lists every Algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Backtracker, Division, HuntAndKill, Sidewinder, Kruskal, Eller, Prim}
}

func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

// ParseAlgorithm resolves a name case-insensitively, ignoring '-', '_' and spaces.
// Besides the String forms it accepts "recursive-backtracker", "recursive-division" and "hak".
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	switch key {
	case "backtracker", "recursivebacktracker":
		return Backtracker, nil
	case "division", "recursivedivision":
		return Division, nil
	case "huntandkill", "hak":
		return HuntAndKill, nil
	case "sidewinder":
		return Sidewinder, nil
	case "kruskal":
		return Kruskal, nil
	case "eller":
		return Eller, nil
	case "prim":
		return Prim, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if int(a) >= len(algorithmNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Generator produces a fresh Grid for (size, seed). Implementations are
// stateless; two calls with identical arguments return equal grids.
type Generator interface {
	Algorithm() Algorithm
	Generate(size grid.Size, seed int64) (*grid.Grid, error)
}

// New returns the Generator for a.
func New(a Algorithm) (Generator, error) {
	switch a {
	case Backtracker:
		return backtracker{}, nil
	case Division:
		return division{}, nil
	case HuntAndKill:
		return huntAndKill{}, nil
	case Sidewinder:
		return sidewinder{}, nil
	case Kruskal:
		return kruskal{}, nil
	case Eller:
		return eller{}, nil
	case Prim:
		return prim{}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
}

// Generate is shorthand for New(a) followed by Generate(size, seed).
func Generate(a Algorithm, size grid.Size, seed int64) (*grid.Grid, error) {
	gen, err := New(a)
	if err != nil {
		return nil, err
	}
	return gen.Generate(size, seed)
}
