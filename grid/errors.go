package grid

import "errors"

var (
	// ErrInvalidSize indicates a width or height that is not positive.
	ErrInvalidSize = errors.New("grid: width and height must be positive")

	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrInvalidCell indicates a cell value outside {Wall, Floor}.
	ErrInvalidCell = errors.New("grid: cell value must be 0 (wall) or 1 (floor)")
)
