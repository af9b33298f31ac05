package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegen/generator"
	"github.com/katalvlaran/mazegen/grid"
	"github.com/katalvlaran/mazegen/layout"
	"github.com/katalvlaran/mazegen/rng"
)

func TestRandomParams(t *testing.T) {
	s := rng.New(11)
	seen := make(map[generator.Algorithm]bool)
	for i := 0; i < 500; i++ {
		p := layout.RandomParams(s)
		for _, d := range []int{p.Size.Width, p.Size.Height} {
			assert.Equal(t, 1, d%2, "dimension %d must be odd", d)
			assert.GreaterOrEqual(t, d, layout.MinRandomSize)
			assert.LessOrEqual(t, d, layout.MaxRandomSize)
		}
		assert.GreaterOrEqual(t, p.Seed, int64(-1<<31))
		assert.Less(t, p.Seed, int64(1<<31))
		seen[p.Algorithm] = true
	}
	assert.Len(t, seen, len(generator.Algorithms()), "every algorithm should eventually be drawn")

	assert.Equal(t, layout.RandomParams(rng.New(3)), layout.RandomParams(rng.New(3)))
}

func TestCorners(t *testing.T) {
	start, end := layout.Corners(grid.Size{Width: 9, Height: 5})
	assert.Equal(t, grid.Coordinates{X: 0, Y: 0}, start)
	assert.Equal(t, grid.Coordinates{X: 8, Y: 4}, end)
}

func TestEdgeDoors(t *testing.T) {
	g, err := generator.Generate(generator.Prim, grid.Size{Width: 15, Height: 15}, 5)
	require.NoError(t, err)
	size := g.Size()
	for seed := int64(0); seed < 50; seed++ {
		in, out, ok := layout.EdgeDoors(g, rng.New(seed))
		require.True(t, ok)
		assert.NotEqual(t, in, out)
		for _, c := range []grid.Coordinates{in, out} {
			assert.True(t, g.IsFloor(c), "%v", c)
			assert.NotEqual(t, layout.None, layout.FacingInto(c, size), "%v must be on the edge", c)
		}
	}

	single, _ := grid.FromRows([][]uint8{{1, 0}, {0, 0}})
	_, _, ok := layout.EdgeDoors(single, rng.New(1))
	assert.False(t, ok)
	_, _, ok = layout.EdgeDoors(nil, rng.New(1))
	assert.False(t, ok)

	// Two candidates: both must be used.
	pair, _ := grid.FromRows([][]uint8{{1, 0, 1}})
	in, out, ok := layout.EdgeDoors(pair, rng.New(8))
	require.True(t, ok)
	assert.ElementsMatch(t, []grid.Coordinates{{X: 0, Y: 0}, {X: 2, Y: 0}}, []grid.Coordinates{in, out})
}

func TestFacingInto(t *testing.T) {
	size := grid.Size{Width: 5, Height: 4}
	cases := []struct {
		c    grid.Coordinates
		want layout.Facing
	}{
		{grid.Coordinates{X: 2, Y: 0}, layout.South},
		{grid.Coordinates{X: 0, Y: 0}, layout.South},
		{grid.Coordinates{X: 2, Y: 3}, layout.North},
		{grid.Coordinates{X: 0, Y: 2}, layout.East},
		{grid.Coordinates{X: 4, Y: 1}, layout.West},
		{grid.Coordinates{X: 2, Y: 2}, layout.None},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, layout.FacingInto(tc.c, size), "%v", tc.c)
	}
}

func TestFacing_Yaw(t *testing.T) {
	assert.Equal(t, 90.0, layout.South.Yaw())
	assert.Equal(t, -90.0, layout.North.Yaw())
	assert.Equal(t, 0.0, layout.East.Yaw())
	assert.Equal(t, 180.0, layout.West.Yaw())
	assert.Equal(t, 0.0, layout.None.Yaw())
	assert.Equal(t, "west", layout.West.String())
	assert.Equal(t, "none", layout.Facing(42).String())
}

func TestRandomFloorCells(t *testing.T) {
	g, err := generator.Generate(generator.Kruskal, grid.Size{Width: 11, Height: 11}, 2)
	require.NoError(t, err)
	floors := g.FloorCount()

	got := layout.RandomFloorCells(g, 10, rng.New(4))
	require.Len(t, got, 10)
	uniq := make(map[grid.Coordinates]bool)
	for _, c := range got {
		assert.True(t, g.IsFloor(c))
		uniq[c] = true
	}
	assert.Len(t, uniq, 10, "cells must be distinct")
	assert.Equal(t, got, layout.RandomFloorCells(g, 10, rng.New(4)))

	all := layout.RandomFloorCells(g, floors+5, rng.New(4))
	assert.Equal(t, g.FloorCells(), all, "oversized requests return every floor cell in order")

	assert.Nil(t, layout.RandomFloorCells(g, 0, rng.New(4)))
	assert.Nil(t, layout.RandomFloorCells(nil, 3, rng.New(4)))
}

func TestRandomFloorCellsExcluding(t *testing.T) {
	room, _ := grid.NewFilled(grid.Size{Width: 9, Height: 9}, grid.Floor)
	player := grid.Coordinates{X: 4, Y: 4}

	got := layout.RandomFloorCellsExcluding(room, 1000, []grid.Coordinates{player}, 2, rng.New(1))
	// 13 cells lie within distance 2 of the center.
	assert.Len(t, got, 81-13)
	for _, c := range got {
		dx, dy := c.X-player.X, c.Y-player.Y
		assert.Greater(t, dx*dx+dy*dy, 4, "%v is too close", c)
	}

	got = layout.RandomFloorCellsExcluding(room, 1000, []grid.Coordinates{player}, -1, rng.New(1))
	assert.Len(t, got, 80)
	assert.NotContains(t, got, player)

	got = layout.RandomFloorCellsExcluding(room, 5, nil, 3, rng.New(1))
	assert.Len(t, got, 5)
}

func TestRandomSpawn(t *testing.T) {
	g, _ := grid.FromRows([][]uint8{{0, 0, 1}, {0, 0, 0}})
	c, ok := layout.RandomSpawn(g, rng.New(9))
	require.True(t, ok)
	assert.Equal(t, grid.Coordinates{X: 2, Y: 0}, c)

	walls, _ := grid.New(grid.Size{Width: 3, Height: 3})
	_, ok = layout.RandomSpawn(walls, rng.New(9))
	assert.False(t, ok)
}
