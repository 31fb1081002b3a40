package tiles

import "errors"

var (
	// ErrBadDimensions indicates a non-positive width or height was passed to New.
	ErrBadDimensions = errors.New("tiles: width and height must be positive")
	// ErrUnknownDirection indicates a rune that is not one of '<', '>', '^', 'v'.
	ErrUnknownDirection = errors.New("tiles: unknown direction rune")
)
