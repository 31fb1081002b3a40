package walk

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tilegrid/tiles"
)

// frontierItem pairs a cell index with its discovery depth and the cell it
// was pushed from (-1 for seeds).
type frontierItem struct {
	at     int
	depth  int
	parent int
}

// walker encapsulates mutable traversal state.
type walker struct {
	ti       tiles.Index
	pass     PassFunc
	opts     Options
	ctx      context.Context
	frontier []frontierItem
	visited  []bool
	res      *Result
}

// Walk explores ti outward from the seed cells, crossing an edge from → to
// only when pass(from, to) is true, and applying any number of functional
// Options. A nil pass allows every edge.
//
// Returns ErrStartOutOfRange for an invalid seed, ErrOptionViolation for bad
// options, the context error on cancellation, or any error returned by the
// OnVisit hook. An empty seed slice yields an empty Result and a nil error.
func Walk(ti tiles.Index, starts []int, pass PassFunc, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate seeds up front; a bad index would corrupt the visited arena.
	for _, s := range starts {
		if !ti.Contains(s) {
			return nil, fmt.Errorf("%w: %d on a %d×%d grid", ErrStartOutOfRange, s, ti.Width, ti.Height)
		}
	}
	if pass == nil {
		pass = func(int, int) bool { return true }
	}

	w := &walker{
		ti:       ti,
		pass:     pass,
		opts:     o,
		ctx:      o.Ctx,
		frontier: make([]frontierItem, 0, len(starts)*4),
		visited:  make([]bool, ti.Len()),
		res: &Result{
			Order:  make([]int, 0, len(starts)),
			Depth:  make(map[int]int, len(starts)),
			Parent: make(map[int]int),
		},
	}

	// Seed the frontier in caller order (no parent)
	for _, s := range starts {
		w.frontier = append(w.frontier, frontierItem{at: s, depth: 0, parent: -1})
	}
	// Main loop
	return w.res, w.loop()
}

// Reachable returns the set of cells connected to the seeds under pass.
// Set membership is strategy-independent, so callers rarely need options here.
func Reachable(ti tiles.Index, starts []int, pass PassFunc, opts ...Option) (map[int]bool, error) {
	res, err := Walk(ti, starts, pass, opts...)
	if err != nil {
		return nil, err
	}
	set := make(map[int]bool, len(res.Order))
	for _, i := range res.Order {
		set[i] = true
	}

	return set, nil
}

// Distances returns the minimum number of steps from the nearest seed for
// every reachable cell. The frontier is forced to BreadthFirst regardless of
// caller options; minimal step counts hold only under that discipline.
func Distances(ti tiles.Index, starts []int, pass PassFunc, opts ...Option) (map[int]int, error) {
	forced := append(opts[:len(opts):len(opts)], WithStrategy(BreadthFirst))
	res, err := Walk(ti, starts, pass, forced...)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}

// loop processes the frontier until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.frontier) > 0 {
		// cancellation check (once per pop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.pop()
		// Visited is marked on pop, so duplicate pushes land here.
		if w.visited[item.at] {
			continue
		}
		if err := w.visit(item); err != nil {
			return err
		}
		w.expand(item)
	}

	return nil
}

// pop removes the next item per the configured strategy: the oldest entry
// under BreadthFirst, the newest under DepthFirst.
func (w *walker) pop() frontierItem {
	if w.opts.Strategy == DepthFirst {
		last := len(w.frontier) - 1
		item := w.frontier[last]
		w.frontier = w.frontier[:last]

		return item
	}
	item := w.frontier[0]
	w.frontier = w.frontier[1:]

	return item
}

// visit marks the cell, records it in the result, and calls OnVisit.
func (w *walker) visit(item frontierItem) error {
	w.visited[item.at] = true
	w.res.Order = append(w.res.Order, item.at)
	w.res.Depth[item.at] = item.depth
	if item.parent >= 0 {
		w.res.Parent[item.at] = item.parent
	}
	if err := w.opts.OnVisit(item.at, item.depth); err != nil {
		return fmt.Errorf("walk: OnVisit error at %d: %w", item.at, err)
	}

	return nil
}

// expand pushes every passable, not-yet-visited neighbor of the popped cell.
// The visited check here is a shortcut only; correctness rests on the check
// in loop, since a cell may sit in the frontier more than once.
func (w *walker) expand(item frontierItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, d := range tiles.Directions {
		n, ok := w.ti.Move(item.at, d)
		if !ok || w.visited[n] {
			continue
		}
		if !w.pass(item.at, n) {
			continue
		}
		w.frontier = append(w.frontier, frontierItem{at: n, depth: next, parent: item.at})
	}
}
