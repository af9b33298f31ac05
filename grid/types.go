package grid

import "fmt"

// Cell is the value of one grid square.
type Cell uint8

const (
	// Wall is an impassable cell.
	Wall Cell = 0
	// Floor is a walkable cell.
	Floor Cell = 1
)

// String returns "wall" or "floor".
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Size holds the maze dimensions: Width columns by Height rows.
type Size struct {
	Width  int
	Height int
}

// Validate returns ErrInvalidSize unless both dimensions are positive.
func (s Size) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	return nil
}

// Area returns Width*Height.
func (s Size) Area() int {
	return s.Width * s.Height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Coordinates addresses one cell: X is the column, Y the row, both 0-indexed.
type Coordinates struct {
	X int
	Y int
}

// Clamp reduces coordinates beyond size to the last valid column/row and
// negative coordinates to 0. It is a normalization, never an error.
func (c Coordinates) Clamp(size Size) Coordinates {
	if c.X >= size.Width {
		c.X = size.Width - 1
	}
	if c.Y >= size.Height {
		c.Y = size.Height - 1
	}
	if c.X < 0 {
		c.X = 0
	}
	if c.Y < 0 {
		c.Y = 0
	}
	return c
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
