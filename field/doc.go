// Package field couples a flat, generically labeled cell buffer with a
// tiles.Index, covering the layer every grid puzzle re-derives: parse a text
// block, look cells up by linear index, find sentinel cells, and analyze
// same-label regions.
//
// What:
//
//   - Field[T] wraps a row-major []T with the tiles.Index addressing it.
//   - Parse/Runes/Digits build a Field from a text block, one rune per cell.
//   - Find/FindAll/Count locate sentinel cells ('S', '0', walls, ...).
//   - Regions partitions the field into maximal 4-connected same-label
//     components; Perimeter and Sides measure each component's boundary.
//
// Why:
//
//   - Elevation maps: seed traversals from every trailhead cell.
//   - Garden plots: price fencing by region area × perimeter or × sides.
//   - Mazes: parse walls once, then feed walk with a label predicate.
//
// Complexity:
//
//   - Parse:     O(W×H), Memory: O(W×H).
//   - Regions:   O(W×H), Memory: O(W×H).
//   - Perimeter: O(area(r)), Memory: O(W×H).
//   - Sides:     O(W×H) per call, Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input text has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrSizeMismatch: cell slice does not fill the given dimensions.
//   - ErrBadDigit: a digit-grid rune outside '0'..'9'.
package field
