package tiles

import (
	"golang.org/x/exp/constraints"
)

// Index describes a rectangular grid's dimensions and maps row-major
// linear cell indices to their directional neighbors.
//
// A linear index i addresses the cell at column i%Width, row i/Width.
// Index is an immutable value: copy it freely and share it across any
// number of concurrent traversals without synchronization.
type Index struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// New builds an Index after validating the dimensions.
// Returns ErrBadDimensions unless width > 0 and height > 0.
func New(width, height int) (Index, error) {
	if width < 1 || height < 1 {
		return Index{}, ErrBadDimensions
	}
	return Index{Width: width, Height: height}, nil
}

// Len returns the number of cells, Width×Height.
func (ti Index) Len() int {
	return ti.Width * ti.Height
}

// Contains reports whether i is a valid linear cell index.
func (ti Index) Contains(i int) bool {
	return i >= 0 && i < ti.Len()
}

// InBounds reports whether column x, row y lies within the grid.
func (ti Index) InBounds(x, y int) bool {
	return x >= 0 && x < ti.Width && y >= 0 && y < ti.Height
}

// At returns the linear index of the cell at column x, row y.
func (ti Index) At(x, y int) int {
	return y*ti.Width + x
}

// Coordinate converts a linear index back to (x, y).
func (ti Index) Coordinate(i int) (x, y int) {
	return i % ti.Width, i / ti.Width
}

// Col returns the column of cell i.
func (ti Index) Col(i int) int {
	return i % ti.Width
}

// Row returns the row of cell i.
func (ti Index) Row(i int) int {
	return i / ti.Width
}

// Right returns the cell one column to the right of i.
// It reports false when i sits in the last column, or is the very
// last cell of the grid.
func (ti Index) Right(i int) (int, bool) {
	if i%ti.Width+1 < ti.Width && i+1 < ti.Len() {
		return i + 1, true
	}
	return 0, false
}

// Left returns the cell one column to the left of i.
// It reports false when i sits in the first column.
func (ti Index) Left(i int) (int, bool) {
	if i%ti.Width > 0 {
		return i - 1, true
	}
	return 0, false
}

// Up returns the cell one row above i.
// It reports false when i sits in the first row.
func (ti Index) Up(i int) (int, bool) {
	if i/ti.Width > 0 {
		return i - ti.Width, true
	}
	return 0, false
}

// Down returns the cell one row below i.
// It reports false when i sits in the last row (i/Width == Height-1).
func (ti Index) Down(i int) (int, bool) {
	if i/ti.Width < ti.Height-1 {
		return i + ti.Width, true
	}
	return 0, false
}

// Move returns the neighbor of i one step in direction d, dispatching to
// Left, Right, Up or Down. Going off-grid reports false.
func (ti Index) Move(i int, d Direction) (int, bool) {
	switch d {
	case Left:
		return ti.Left(i)
	case Right:
		return ti.Right(i)
	case Up:
		return ti.Up(i)
	case Down:
		return ti.Down(i)
	}
	return 0, false
}

// Neighbors returns the existing orthogonal neighbors of i, in
// Directions order (Left, Right, Up, Down). Corner cells yield two
// entries, edge cells three, interior cells four.
// Complexity: O(1) time, one slice allocation.
func (ti Index) Neighbors(i int) []int {
	out := make([]int, 0, 4)
	for _, d := range Directions {
		if n, ok := ti.Move(i, d); ok {
			out = append(out, n)
		}
	}
	return out
}

// Manhattan returns the Manhattan (taxicab) distance between cells a and b.
func (ti Index) Manhattan(a, b int) int {
	return AbsDiff(ti.Col(a), ti.Col(b)) + AbsDiff(ti.Row(a), ti.Row(b))
}

// AbsDiff returns |a-b| for any signed integer type.
func AbsDiff[T constraints.Signed](a, b T) T {
	if a < b {
		return b - a
	}
	return a - b
}
