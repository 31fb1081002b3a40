package tiles

import (
	"fmt"
	"unicode"
)

// Direction is one of the four compass directions on a rectangular grid.
// The zero value is Left.
type Direction uint8

const (
	// Left moves one column toward x=0.
	Left Direction = iota
	// Right moves one column away from x=0.
	Right
	// Up moves one row toward y=0.
	Up
	// Down moves one row away from y=0.
	Down
)

// Directions lists all four directions in declaration order.
// Traversals that enumerate neighbors do so in this order.
var Directions = [4]Direction{Left, Right, Up, Down}

// IsHorizontal reports whether d is Left or Right.
func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

// IsVertical reports whether d is Up or Down.
func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

// Clock returns d rotated 90° clockwise: Up→Right→Down→Left→Up.
// Four applications return the original direction.
func (d Direction) Clock() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	}
	panic(fmt.Sprintf("tiles: invalid Direction(%d)", uint8(d)))
}

// Counterclock returns d rotated 90° counterclockwise; it is the exact
// inverse of Clock for every direction.
func (d Direction) Counterclock() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	case Right:
		return Up
	}
	panic(fmt.Sprintf("tiles: invalid Direction(%d)", uint8(d)))
}

// String returns the arrow rune for d: "<", ">", "^" or "v".
// Unknown values render as "?".
func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return "?"
}

// ParseDirection maps an arrow rune to its Direction:
// '<'→Left, '>'→Right, '^'→Up, 'v'→Down.
// Any other rune yields ErrUnknownDirection.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case '<':
		return Left, nil
	case '>':
		return Right, nil
	case '^':
		return Up, nil
	case 'v':
		return Down, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, r)
}

// ParseDirections parses a whole move script of arrow runes,
// skipping any whitespace (move lists commonly span several lines).
// Complexity: O(len(s)).
func ParseDirections(s string) ([]Direction, error) {
	dirs := make([]Direction, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		d, err := ParseDirection(r)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}
