package walk

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrStartOutOfRange is returned when a seed index is not a valid cell.
	ErrStartOutOfRange = errors.New("walk: start index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for cells the walk never visited.
	ErrNoPath = errors.New("walk: no path to destination")
)

// PassFunc decides whether a traversal may cross from one cell to an
// orthogonally adjacent one. It must be pure: passability may not change
// during a single walk.
type PassFunc func(from, to int) bool

// Strategy selects the frontier discipline.
type Strategy uint8

const (
	// BreadthFirst pops the oldest frontier entry (queue). Required whenever
	// minimal step counts matter: every cell at depth d is visited before any
	// cell at depth d+1 is discovered.
	BreadthFirst Strategy = iota

	// DepthFirst pops the newest frontier entry (stack). Same visited set,
	// different visit order; recorded depths follow the discovery path and
	// are not guaranteed minimal.
	DepthFirst
)

// Option configures traversal behavior via functional arguments.
// If an Option is invalid (negative depth, unknown strategy), it is recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Strategy picks queue-based (BreadthFirst) or stack-based (DepthFirst)
	// frontier order.
	Strategy Strategy

	// MaxDepth, if > 0, stops expanding neighbors beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnVisit is called when a cell is popped and visited. If it returns an
	// error, the walk aborts and propagates that error.
	OnVisit func(index, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - BreadthFirst frontier order
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: BreadthFirst,
		MaxDepth: 0,
		OnVisit:  func(int, int) error { return nil },
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the frontier discipline.
// An unknown strategy value is invalid and yields ErrOptionViolation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s > DepthFirst {
			o.err = fmt.Errorf("%w: unknown strategy (%d)", ErrOptionViolation, s)
			return
		}
		o.Strategy = s
	}
}

// WithMaxDepth stops neighbor expansion at the given depth.
//
//	d > 0:  cells deeper than d are never pushed
//	d == 0: explicit no depth limit
//	d < 0:  invalid option, yields ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnVisit registers a callback to run on every visit; returning an error
// from this callback stops the walk.
func WithOnVisit(fn func(index, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell index to its step count from the nearest seed
//     (minimal only under BreadthFirst).
//   - Parent: map from cell index to the cell it was first reached from.
//     Seed cells carry no Parent entry.
//
// Unreached cells appear in none of the three.
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// Reached reports whether the walk visited the given cell.
func (r *Result) Reached(index int) bool {
	_, ok := r.Depth[index]
	return ok
}

// PathTo reconstructs the seed-to-dest path along parent links.
// Returns ErrNoPath if dest was never visited.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	// build reversed path
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get seed → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
