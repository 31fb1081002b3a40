// Package tilegrid is a small toolkit for rectangular 2-D tile maps
// addressed by flat linear indices — bounds-aware directional moves,
// generic frontier traversal, and labeled cell fields.
//
// 🚀 What is tilegrid?
//
//	A compact, allocation-light library that brings together:
//		• Tile indexing: row-major linear addressing with safe Left/Right/Up/Down moves
//		• Directions: a closed four-way compass with clockwise/counterclockwise rotation
//		• Traversal: one breadth-first/depth-first frontier walk, parameterized
//		  by a passability predicate — reachability, flood fill, hop distances
//		• Fields: character and digit grids parsed from text, with region
//		  analysis (areas, perimeters, straight sides)
//
// ✨ Why choose tilegrid?
//
//   - Index-based – cells are plain ints into a flat buffer, no pointers, no arenas
//   - Predictable boundaries – off-grid moves return (index, false), never wrap
//   - One traversal – BFS and DFS share a single frontier loop with hooks
//   - Share freely – an Index is an immutable value; concurrent walks never contend
//
// Everything is organized under three subpackages:
//
//	tiles/ — Index (dimensions + moves) and Direction primitives
//	walk/  — frontier traversal: Walk, Reachable, Distances
//	field/ — text-parsed cell grids, sentinel lookup, connected regions
//
// Quick ASCII example:
//
//	    0 1 2
//	    3 4 5      index 4 has neighbors 3, 5, 1, 7
//	    6 7 8
//
//	a 3×3 grid under row-major linear addressing.
//
//	go get github.com/katalvlaran/tilegrid
package tilegrid
