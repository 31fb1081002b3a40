package field

import "errors"

var (
	// ErrEmptyGrid indicates the input text holds no grid rows.
	ErrEmptyGrid = errors.New("field: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("field: all rows must have the same length")
	// ErrSizeMismatch indicates a cell slice whose length differs from the grid capacity.
	ErrSizeMismatch = errors.New("field: cell count does not match grid dimensions")
	// ErrBadDigit indicates a grid rune outside '0'..'9'.
	ErrBadDigit = errors.New("field: rune is not a decimal digit")
)
