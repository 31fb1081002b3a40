package field

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tilegrid/tiles"
	"github.com/katalvlaran/tilegrid/walk"
)

// Field couples a flat cell buffer with the tiles.Index addressing it.
// Cells[i] is the label of cell i under row-major layout; the two fields
// always agree in size.
type Field[T comparable] struct {
	Cells []T
	Tiles tiles.Index
}

// New wraps a copy of cells in a Field addressed by ti.
// It deep-copies the input to ensure immutability from the caller's side.
// Returns ErrSizeMismatch unless len(cells) == ti.Len().
func New[T comparable](cells []T, ti tiles.Index) (*Field[T], error) {
	if len(cells) != ti.Len() {
		return nil, fmt.Errorf("%w: %d cells on a %d×%d grid", ErrSizeMismatch, len(cells), ti.Width, ti.Height)
	}
	own := make([]T, len(cells))
	copy(own, cells)

	return &Field[T]{Cells: own, Tiles: ti}, nil
}

// Parse decodes a text block into a Field, one rune per cell, feeding every
// rune through conv. Surrounding blank lines and per-line whitespace are
// trimmed first (the usual shape of puzzle inputs). Returns ErrEmptyGrid or
// ErrNonRectangular for malformed blocks; a conv error is wrapped with the
// failing cell position.
func Parse[T comparable](s string, conv func(r rune) (T, error)) (*Field[T], error) {
	rows := splitRows(s)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	ti, err := tiles.New(w, len(rows))
	if err != nil {
		return nil, err
	}

	cells := make([]T, 0, ti.Len())
	for y, row := range rows {
		for x, r := range row {
			v, convErr := conv(r)
			if convErr != nil {
				return nil, fmt.Errorf("field: cell (%d,%d): %w", x, y, convErr)
			}
			cells = append(cells, v)
		}
	}

	return &Field[T]{Cells: cells, Tiles: ti}, nil
}

// Runes decodes a text block into a rune-labeled Field.
func Runes(s string) (*Field[rune], error) {
	return Parse(s, func(r rune) (rune, error) { return r, nil })
}

// Digits decodes a text block of decimal digits into a uint8-labeled Field
// (elevation maps and the like). Any other rune yields ErrBadDigit.
func Digits(s string) (*Field[uint8], error) {
	return Parse(s, func(r rune) (uint8, error) {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrBadDigit, r)
		}

		return uint8(r - '0'), nil
	})
}

// splitRows cuts s into trimmed rune rows.
// Interior blank lines survive as zero-width rows for Parse to reject.
func splitRows(s string) [][]rune {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	rows := make([][]rune, len(lines))
	for i, ln := range lines {
		rows[i] = []rune(strings.TrimSpace(ln))
	}

	return rows
}

// Len returns the number of cells.
func (f *Field[T]) Len() int { return len(f.Cells) }

// At returns the label of cell i.
func (f *Field[T]) At(i int) T { return f.Cells[i] }

// Set replaces the label of cell i.
func (f *Field[T]) Set(i int, v T) { f.Cells[i] = v }

// Find returns the first cell labeled v, in index order.
func (f *Field[T]) Find(v T) (int, bool) {
	for i, c := range f.Cells {
		if c == v {
			return i, true
		}
	}

	return 0, false
}

// FindAll returns every cell labeled v, in ascending index order.
func (f *Field[T]) FindAll(v T) []int {
	var out []int
	for i, c := range f.Cells {
		if c == v {
			out = append(out, i)
		}
	}

	return out
}

// Count returns how many cells carry label v.
func (f *Field[T]) Count(v T) int {
	n := 0
	for _, c := range f.Cells {
		if c == v {
			n++
		}
	}

	return n
}

// Pass lifts a label-level predicate into a walk.PassFunc over cell indices,
// the usual bridge between a parsed grid and a traversal.
func (f *Field[T]) Pass(allowed func(from, to T) bool) walk.PassFunc {
	return func(from, to int) bool {
		return allowed(f.Cells[from], f.Cells[to])
	}
}
