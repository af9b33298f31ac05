package pathfind_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegen/generator"
	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/pathfind"
)

// mustGrid builds a grid from rows or fails the test.
func mustGrid(t *testing.T, rows [][]uint8) *grid.Grid {
	t.Helper()
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	return g
}

// onPath counts overlay cells marked OnPath.
func onPath(p *pathfind.Path) int {
	return p.Overlay.FloorCount()
}

func TestBuildGraph_NeighborOrder(t *testing.T) {
	// Plus shape: center (1,1) touches all four directions.
	g := mustGrid(t, [][]uint8{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	})
	gr, err := pathfind.BuildGraph(g)
	require.NoError(t, err)

	center := gr.Vertex(grid.Coordinates{X: 1, Y: 1})
	// West, East, North, South.
	assert.Equal(t, []int{3, 5, 1, 7}, gr.Neighbors(center))
	assert.Empty(t, gr.Neighbors(0), "walls have no edges")
	assert.Equal(t, 4, gr.EdgeCount())
	assert.Equal(t, 9, gr.Order())
	assert.Equal(t, grid.Coordinates{X: 2, Y: 1}, gr.Coordinate(5))

	_, err = pathfind.BuildGraph(nil)
	assert.ErrorIs(t, err, pathfind.ErrNilGrid)
}

func TestFindPath_SameCell(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 1},
		{0, 1},
	})
	c := grid.Coordinates{X: 1, Y: 1}
	p, err := pathfind.FindPath(g, c, c)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Length)
	assert.Equal(t, 1, onPath(p))
	assert.Equal(t, []grid.Coordinates{c}, p.Cells)
}

func TestFindPath_Corridor(t *testing.T) {
	const n = 7
	row, err := grid.NewFilled(grid.Size{Width: n, Height: 1}, grid.Floor)
	require.NoError(t, err)
	p, err := pathfind.FindPath(row, grid.Coordinates{X: 0, Y: 0}, grid.Coordinates{X: n - 1, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, n, p.Length)
	assert.Equal(t, n, onPath(p))

	col, err := grid.NewFilled(grid.Size{Width: 1, Height: n}, grid.Floor)
	require.NoError(t, err)
	p, err = pathfind.FindPath(col, grid.Coordinates{X: 0, Y: n - 1}, grid.Coordinates{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, n, p.Length)
	assert.Equal(t, grid.Coordinates{X: 0, Y: n - 1}, p.Cells[0])
	assert.Equal(t, grid.Coordinates{X: 0, Y: 0}, p.Cells[n-1])
}

func TestFindPath_TieBreakOrder(t *testing.T) {
	open, err := grid.NewFilled(grid.Size{Width: 3, Height: 3}, grid.Floor)
	require.NoError(t, err)
	p, err := pathfind.FindPath(open, grid.Coordinates{X: 0, Y: 0}, grid.Coordinates{X: 2, Y: 2})
	require.NoError(t, err)
	// East is expanded before South, so the path hugs the top edge first.
	want := []grid.Coordinates{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}
	assert.Equal(t, want, p.Cells)
	assert.Equal(t, 5, p.Length)
	assert.Equal(t, [][]uint8{
		{1, 1, 1},
		{0, 0, 1},
		{0, 0, 1},
	}, p.Overlay.Rows())
}

func TestFindPath_OverlayIsIndependent(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 1, 1},
		{0, 0, 1},
	})
	before := g.Clone()
	p, err := pathfind.FindPath(g, grid.Coordinates{X: 0, Y: 0}, grid.Coordinates{X: 2, Y: 1})
	require.NoError(t, err)
	p.Overlay.Set(grid.Coordinates{X: 0, Y: 1}, pathfind.OnPath)
	assert.True(t, before.Equal(g), "input grid must be untouched")
}

func TestFindPath_DisconnectedRooms(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 1, 0, 1, 1},
		{1, 1, 0, 1, 1},
	})
	p, err := pathfind.FindPath(g, grid.Coordinates{X: 0, Y: 0}, grid.Coordinates{X: 4, Y: 1})
	assert.Nil(t, p)
	assert.ErrorIs(t, err, pathfind.ErrNotReachable)
	assert.NotErrorIs(t, err, pathfind.ErrOutOfBounds)
}

func TestFindPath_InvalidEndpoints(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 0},
		{1, 1},
	})
	cases := []struct {
		name       string
		start, end grid.Coordinates
		want       error
	}{
		{"start out of bounds", grid.Coordinates{X: -1, Y: 0}, grid.Coordinates{X: 0, Y: 0}, pathfind.ErrOutOfBounds},
		{"end out of bounds", grid.Coordinates{X: 0, Y: 0}, grid.Coordinates{X: 2, Y: 1}, pathfind.ErrOutOfBounds},
		{"start on wall", grid.Coordinates{X: 1, Y: 0}, grid.Coordinates{X: 0, Y: 0}, pathfind.ErrNotReachable},
		{"end on wall", grid.Coordinates{X: 0, Y: 0}, grid.Coordinates{X: 1, Y: 0}, pathfind.ErrNotReachable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pathfind.FindPath(g, tc.start, tc.end)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := pathfind.FindPath(nil, grid.Coordinates{}, grid.Coordinates{})
	assert.ErrorIs(t, err, pathfind.ErrNilGrid)
}

func TestFindPath_Options(t *testing.T) {
	row, _ := grid.NewFilled(grid.Size{Width: 5, Height: 1}, grid.Floor)
	from, to := grid.Coordinates{X: 0, Y: 0}, grid.Coordinates{X: 4, Y: 0}

	_, err := pathfind.FindPath(row, from, to, pathfind.WithMaxDepth(-1))
	assert.ErrorIs(t, err, pathfind.ErrOptionViolation)

	_, err = pathfind.FindPath(row, from, to, pathfind.WithMaxDepth(2))
	assert.ErrorIs(t, err, pathfind.ErrNotReachable)

	p, err := pathfind.FindPath(row, from, to, pathfind.WithMaxDepth(4))
	require.NoError(t, err)
	assert.Equal(t, 5, p.Length)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pathfind.FindPath(row, from, to, pathfind.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	var depths []int
	_, err = pathfind.FindPath(row, from, to, pathfind.WithOnVisit(func(_ grid.Coordinates, d int) error {
		depths = append(depths, d)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, depths)

	stop := errors.New("stop")
	_, err = pathfind.FindPath(row, from, to, pathfind.WithOnVisit(func(grid.Coordinates, int) error { return stop }))
	assert.ErrorIs(t, err, stop)
}

func TestAnalyze(t *testing.T) {
	cases := []struct {
		name string
		rows [][]uint8
		want pathfind.Report
	}{
		{
			name: "corridor is a tree",
			rows: [][]uint8{{1, 1, 1}},
			want: pathfind.Report{FloorCells: 3, Edges: 2, Components: 1, Perfect: true},
		},
		{
			name: "open square has a cycle",
			rows: [][]uint8{{1, 1}, {1, 1}},
			want: pathfind.Report{FloorCells: 4, Edges: 4, Components: 1, Perfect: false},
		},
		{
			name: "two rooms",
			rows: [][]uint8{{1, 0, 1}},
			want: pathfind.Report{FloorCells: 2, Edges: 0, Components: 2, Perfect: false},
		},
		{
			name: "all wall",
			rows: [][]uint8{{0, 0}},
			want: pathfind.Report{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pathfind.Analyze(mustGrid(t, tc.rows)))
		})
	}
	assert.Equal(t, pathfind.Report{}, pathfind.Analyze(nil))
}

func TestGraph_Components(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	})
	gr, err := pathfind.BuildGraph(g)
	require.NoError(t, err)
	comps := gr.Components()
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 4)
	assert.Len(t, comps[1], 2)
}

func TestBridgeComponents(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 0, 0, 1},
		{1, 0, 0, 1},
	})
	b, err := pathfind.BridgeComponents(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Cost())
	assert.Equal(t, []grid.Coordinates{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, b.Cells)
	assert.Equal(t, []grid.Coordinates{{X: 1, Y: 0}, {X: 2, Y: 0}}, b.Walls)

	_, err = pathfind.BridgeComponents(g, 0, 2)
	assert.ErrorIs(t, err, pathfind.ErrComponentIndex)
	_, err = pathfind.BridgeComponents(nil, 0, 0)
	assert.ErrorIs(t, err, pathfind.ErrNilGrid)
}

func TestBridgeComponents_PrefersFloor(t *testing.T) {
	// The detour along the bottom row costs one wall; straight across costs two.
	g := mustGrid(t, [][]uint8{
		{1, 0, 0, 1},
		{1, 1, 0, 1},
	})
	b, err := pathfind.BridgeComponents(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Cost())
	assert.Equal(t, []grid.Coordinates{{X: 2, Y: 1}}, b.Walls)
}

func TestConnectAll(t *testing.T) {
	g := mustGrid(t, [][]uint8{{1, 0, 1, 0, 1}})
	out, opened, err := pathfind.ConnectAll(g)
	require.NoError(t, err)
	assert.Equal(t, []grid.Coordinates{{X: 1, Y: 0}, {X: 3, Y: 0}}, opened)
	assert.Equal(t, 1, pathfind.Analyze(out).Components)
	assert.Equal(t, 3, g.FloorCount(), "input is untouched")

	single := mustGrid(t, [][]uint8{{1, 1}})
	out, opened, err = pathfind.ConnectAll(single)
	require.NoError(t, err)
	assert.Empty(t, opened)
	assert.True(t, out.Equal(single))

	_, _, err = pathfind.ConnectAll(nil)
	assert.ErrorIs(t, err, pathfind.ErrNilGrid)
}

func TestFindPath_Symmetric(t *testing.T) {
	sizes := []grid.Size{{Width: 1, Height: 9}, {Width: 8, Height: 6}, {Width: 15, Height: 11}, {Width: 31, Height: 31}}
	for _, a := range generator.Algorithms() {
		t.Run(a.String(), func(t *testing.T) {
			for _, size := range sizes {
				for seed := int64(0); seed < 3; seed++ {
					g, err := generator.Generate(a, size, seed)
					require.NoError(t, err)
					floors := g.FloorCells()
					n := len(floors)
					pairs := [][2]int{{0, n - 1}, {n / 3, 2 * n / 3}, {n / 2, 0}, {n - 1, n / 4}}
					for _, pr := range pairs {
						from, to := floors[pr[0]], floors[pr[1]]
						fwd, err := pathfind.FindPath(g, from, to)
						require.NoError(t, err, "%v seed %d %v->%v", size, seed, from, to)
						back, err := pathfind.FindPath(g, to, from)
						require.NoError(t, err, "%v seed %d %v->%v", size, seed, to, from)

						assert.Equal(t, fwd.Length, back.Length, "%v seed %d %v<->%v", size, seed, from, to)
						// A perfect maze has exactly one simple path per pair.
						rev := slices.Clone(back.Cells)
						slices.Reverse(rev)
						assert.Equal(t, fwd.Cells, rev, "%v seed %d %v<->%v", size, seed, from, to)
					}
				}
			}
		})
	}
}
