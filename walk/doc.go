// Package walk implements generic breadth-first and depth-first exploration
// over a rectangular grid addressed through tiles.Index.
//
// A traversal starts from one or more seed cells and expands through the four
// orthogonal neighbors, crossing an edge only when a caller-supplied
// passability predicate allows it. The same engine answers three questions:
//
//   - Walk:      full trace with visit order, per-cell depth, parent links.
//   - Reachable: the set of cells connected to the seeds.
//   - Distances: minimum step count from the nearest seed (always BFS).
//
// Key properties:
//
//   - A cell is marked visited when it is popped from the frontier, never at
//     push time, so duplicate frontier entries are harmless.
//   - The passability predicate is consulted at most once per directed
//     (from, to) edge.
//   - Cells that cannot be reached are absent from every result map; there
//     is no sentinel value.
//   - An empty seed set yields an empty Result, not an error.
//   - The visited set is identical for both strategies; only Order and the
//     non-BFS Depth values depend on frontier discipline.
//
// Complexity:
//
//   - Time:   O(W·H) pops plus constant work per grid edge, predicate cost aside.
//   - Memory: O(W·H) for the visited arena and the frontier.
//
// Options:
//
//   - WithContext(ctx):  cancellation via context.Context.
//   - WithStrategy(s):   BreadthFirst (default) or DepthFirst frontier order.
//   - WithMaxDepth(d):   do not expand past depth d; 0 means no limit.
//   - WithOnVisit(fn):   per-visit hook; returning an error aborts the walk.
//
// Errors:
//
//   - ErrStartOutOfRange: a seed index lies outside the grid.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrNoPath:          Result.PathTo target was never visited.
package walk
