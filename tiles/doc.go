// Package tiles provides bounds-aware linear indexing for rectangular
// 2-D grids, plus the closed four-way Direction compass.
//
// What:
//
//   - Index describes a grid's dimensions (Width×Height) and maps a
//     row-major linear cell index to its neighbor in a compass direction.
//   - Off-grid moves are reported as (0, false) — an expected outcome,
//     never an error.
//   - Direction is a fixed enumeration {Left, Right, Up, Down} with
//     clockwise/counterclockwise rotation and horizontal/vertical
//     classification, parseable from the arrow runes '<', '>', '^', 'v'.
//
// Why:
//
//   - Flat []T buffers index cells by a single int: no pointers, no
//     coordinate structs on hot paths, no aliasing questions.
//   - Puzzle and game maps move in exactly four directions; a closed enum
//     with exhaustive switches beats open polymorphism here.
//
// Complexity:
//
//   - Every Index method: O(1) time, zero allocations (Neighbors allocates
//     one small slice).
//
// Errors:
//
//   - ErrBadDimensions: New was given a non-positive width or height.
//   - ErrUnknownDirection: a rune other than '<', '>', '^', 'v' was parsed.
//
// Index methods assume a valid cell index (0 ≤ i < Len()); callers iterate
// cell indices they derived from the same Index, so no per-call range
// check is performed beyond the boundary arithmetic itself.
package tiles
