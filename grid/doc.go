// Package grid defines the floor/wall matrix every maze algorithm produces and
// the pathfinder consumes.
//
// What:
//
//   - Grid is a rectangular, row-major matrix of Cell values (Wall = 0, Floor = 1).
//   - Size and Coordinates describe dimensions and 0-indexed (X column, Y row) cells.
//   - Coordinates.Clamp reduces out-of-range values to the last valid row/column.
//   - Format renders a text dump with optional path overlay; glyph widths are
//     measured in terminal columns so wide glyphs stay aligned.
//
// Ownership:
//
//	A Grid returned by a generator belongs to the caller. Nothing in this module
//	keeps a reference to it, and the pathfinder writes its result into a separate
//	Grid of the same shape instead of mutating the input.
//
// Errors:
//
//   - ErrInvalidSize: width or height ≤ 0.
//   - ErrEmptyGrid: input rows are empty.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCell: a cell value other than 0 or 1.
package grid
