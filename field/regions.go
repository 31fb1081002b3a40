package field

import (
	"github.com/katalvlaran/tilegrid/tiles"
	"github.com/katalvlaran/tilegrid/walk"
)

// Region is a maximal 4-connected group of equally labeled cells.
type Region[T comparable] struct {
	// Label is the value shared by every member cell.
	Label T
	// Cells lists member indices in traversal order from the lowest-index seed.
	Cells []int
}

// Area returns the number of cells in the region.
func (r Region[T]) Area() int { return len(r.Cells) }

// Regions partitions the field into maximal 4-connected components of equal
// label. Components are discovered in ascending seed order, so the first
// region always contains cell 0.
//
// Time: O(W×H), Memory: O(W×H).
func (f *Field[T]) Regions() ([]Region[T], error) {
	claimed := make([]bool, f.Len())
	same := f.Pass(func(from, to T) bool { return from == to })

	var regions []Region[T]
	for seed := 0; seed < f.Len(); seed++ {
		if claimed[seed] {
			continue
		}
		res, err := walk.Walk(f.Tiles, []int{seed}, same)
		if err != nil {
			return nil, err
		}
		for _, i := range res.Order {
			claimed[i] = true
		}
		regions = append(regions, Region[T]{Label: f.Cells[seed], Cells: res.Order})
	}

	return regions, nil
}

// Perimeter counts the unit edges of r facing off-grid or a cell outside
// the region.
//
// r must come from this field's Regions; foreign indices are the caller's
// contract violation.
func (f *Field[T]) Perimeter(r Region[T]) int {
	members := f.membership(r)
	p := 0
	for _, c := range r.Cells {
		for _, d := range tiles.Directions {
			n, ok := f.Tiles.Move(c, d)
			if !ok || !members[n] {
				p++
			}
		}
	}

	return p
}

// Sides counts the straight boundary runs of r: a fence line counts once
// however many cells it spans.
//
// A member cell exposes direction d when its d-neighbor is off-grid or
// outside the region. Two cells exposing the same d can never be adjacent
// along d itself, so every 4-connected group in the per-direction exposure
// mask is exactly one straight side; the groups are counted by reusing
// Regions over a boolean field.
//
// Time: O(W×H) per call, Memory: O(W×H).
func (f *Field[T]) Sides(r Region[T]) (int, error) {
	members := f.membership(r)
	sides := 0
	for _, d := range tiles.Directions {
		mask := make([]bool, f.Len())
		for _, c := range r.Cells {
			n, ok := f.Tiles.Move(c, d)
			if !ok || !members[n] {
				mask[c] = true
			}
		}
		exposure := &Field[bool]{Cells: mask, Tiles: f.Tiles}
		groups, err := exposure.Regions()
		if err != nil {
			return 0, err
		}
		for _, g := range groups {
			if g.Label {
				sides++
			}
		}
	}

	return sides, nil
}

// membership flags r's cells on a flat arena sized to the field.
func (f *Field[T]) membership(r Region[T]) []bool {
	m := make([]bool, f.Len())
	for _, c := range r.Cells {
		m[c] = true
	}

	return m
}
