package grid

import "strings"

// Grid is a Height×Width matrix of cells stored row-major.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New returns an all-wall grid of the given size.
// Returns ErrInvalidSize when a dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(size Size) (*Grid, error) {
	return NewFilled(size, Wall)
}

// NewFilled returns a grid of the given size with every cell set to c.
func NewFilled(size Size, c Cell) (*Grid, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	if c != Wall && c != Floor {
		return nil, ErrInvalidCell
	}
	cells := make([]Cell, size.Area())
	if c != Wall {
		for i := range cells {
			cells[i] = c
		}
	}
	return &Grid{width: size.Width, height: size.Height, cells: cells}, nil
}

// FromRows builds a grid from a non-empty, rectangular 2D slice of 0/1 values.
// The input is copied.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrInvalidCell.
func FromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]Cell, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for _, v := range row {
			if v > uint8(Floor) {
				return nil, ErrInvalidCell
			}
			cells = append(cells, Cell(v))
		}
	}
	return &Grid{width: w, height: h, cells: cells}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size {
	return Size{Width: g.width, Height: g.height}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries.
func (g *Grid) InBounds(c Coordinates) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Index maps c to its row-major index: Y*Width + X. c must be in bounds.
func (g *Grid) Index(c Coordinates) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to coordinates.
func (g *Grid) Coordinate(idx int) Coordinates {
	return Coordinates{X: idx % g.width, Y: idx / g.width}
}

// At returns the cell at c, or Wall when c is out of bounds.
func (g *Grid) At(c Coordinates) Cell {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[g.Index(c)]
}

// IsFloor reports whether c is an in-bounds floor cell.
func (g *Grid) IsFloor(c Coordinates) bool {
	return g.At(c) == Floor
}

// Set writes v at c. Out-of-bounds writes are ignored.
// Grids handed out by generators are meant to be read-only; Set exists for
// builders and synthetic fixtures.
func (g *Grid) Set(c Coordinates, v Cell) {
	if g.InBounds(c) {
		g.cells[g.Index(c)] = v
	}
}

// Rows returns a deep copy of the grid as rows of 0/1 bytes.
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.height)
	for y := 0; y < g.height; y++ {
		row := make([]uint8, g.width)
		for x := 0; x < g.width; x++ {
			row[x] = uint8(g.cells[y*g.width+x])
		}
		rows[y] = row
	}
	return rows
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether g and o have the same shape and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// FloorCount returns the number of floor cells.
func (g *Grid) FloorCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Floor {
			n++
		}
	}
	return n
}

// FloorCells lists every floor cell in row-major order.
func (g *Grid) FloorCells() []Coordinates {
	out := make([]Coordinates, 0, g.FloorCount())
	for i, c := range g.cells {
		if c == Floor {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// EdgeFloorCells lists floor cells on the outer border, each once: for every
// column the north then the south cell, then for every remaining row the west
// then the east cell.
func (g *Grid) EdgeFloorCells() []Coordinates {
	var out []Coordinates
	add := func(c Coordinates) {
		if g.IsFloor(c) {
			out = append(out, c)
		}
	}
	for x := 0; x < g.width; x++ {
		add(Coordinates{X: x, Y: 0})
		if g.height > 1 {
			add(Coordinates{X: x, Y: g.height - 1})
		}
	}
	for y := 1; y < g.height-1; y++ {
		add(Coordinates{X: 0, Y: y})
		if g.width > 1 {
			add(Coordinates{X: g.width - 1, Y: y})
		}
	}
	return out
}

// String renders '#' for walls and '.' for floors, one line per row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == Floor {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
