package walk_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilegrid/tiles"
	"github.com/katalvlaran/tilegrid/walk"
)

// mustIndex builds a tiles.Index or fails the test.
func mustIndex(t *testing.T, w, h int) tiles.Index {
	t.Helper()
	ti, err := tiles.New(w, h)
	require.NoError(t, err)

	return ti
}

// heights4x4 is an elevation fixture with a single trailhead at index 0 and
// a single peak (9) at index 12:
//
//	0 1 2 3
//	1 2 3 4
//	8 7 6 5
//	9 8 7 6
var heights4x4 = []int{
	0, 1, 2, 3,
	1, 2, 3, 4,
	8, 7, 6, 5,
	9, 8, 7, 6,
}

// uphill allows a step only when elevation rises by exactly one.
func uphill(from, to int) bool { return heights4x4[to] == heights4x4[from]+1 }

// blockCells builds a PassFunc that forbids entering any listed cell.
func blockCells(cells ...int) walk.PassFunc {
	walls := make(map[int]bool, len(cells))
	for _, c := range cells {
		walls[c] = true
	}

	return func(_, to int) bool { return !walls[to] }
}

func TestWalk_EmptyStarts(t *testing.T) {
	ti := mustIndex(t, 3, 3)
	res, err := walk.Walk(ti, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.Depth)
	assert.Empty(t, res.Parent)

	set, err := walk.Reachable(ti, []int{}, nil)
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestWalk_StartOutOfRange(t *testing.T) {
	ti := mustIndex(t, 3, 3)
	for _, bad := range []int{-1, 9, 100} {
		res, err := walk.Walk(ti, []int{bad}, nil)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, walk.ErrStartOutOfRange, "start %d", bad)
	}
}

func TestWalk_OptionViolation(t *testing.T) {
	ti := mustIndex(t, 3, 3)

	res, err := walk.Walk(ti, []int{0}, nil, walk.WithMaxDepth(-1))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, walk.ErrOptionViolation)

	res, err = walk.Walk(ti, []int{0}, nil, walk.WithStrategy(walk.Strategy(9)))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, walk.ErrOptionViolation)
}

func TestWalk_SingleCell(t *testing.T) {
	ti := mustIndex(t, 1, 1)
	res, err := walk.Walk(ti, []int{0}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
	assert.Equal(t, map[int]int{0: 0}, res.Depth)
	_, hasParent := res.Parent[0]
	assert.False(t, hasParent, "seed cell should have no parent")
}

func TestWalk_BFSOrderAndDepth(t *testing.T) {
	ti := mustIndex(t, 3, 3)
	res, err := walk.Walk(ti, []int{0}, nil)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 2, 4, 6, 5, 7, 8}, res.Order)
	assert.Equal(t, map[int]int{
		0: 0, 1: 1, 3: 1,
		2: 2, 4: 2, 6: 2,
		5: 3, 7: 3,
		8: 4,
	}, res.Depth)

	// BFS visits all cells at depth d before any cell at depth d+1.
	for i := 1; i < len(res.Order); i++ {
		assert.GreaterOrEqual(t, res.Depth[res.Order[i]], res.Depth[res.Order[i-1]],
			"depth must be non-decreasing along the visit order")
	}
}

func TestWalk_DFSOrder(t *testing.T) {
	ti := mustIndex(t, 3, 3)
	res, err := walk.Walk(ti, []int{0}, nil, walk.WithStrategy(walk.DepthFirst))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 3, 6, 7, 4, 1, 2, 5, 8}, res.Order)
	// Depth follows the discovery path, not the grid distance.
	assert.Equal(t, 8, res.Depth[8])
}

func TestWalk_VisitedSetStrategyIndependent(t *testing.T) {
	ti := mustIndex(t, 3, 3)
	pass := blockCells(1, 4, 7) // wall down the middle column

	bfs, err := walk.Walk(ti, []int{0}, pass)
	require.NoError(t, err)
	dfs, err := walk.Walk(ti, []int{0}, pass, walk.WithStrategy(walk.DepthFirst))
	require.NoError(t, err)

	keys := func(m map[int]int) []int {
		out := make([]int, 0, len(m))
		for k := range m {
			out = append(out, k)
		}
		sort.Ints(out)

		return out
	}
	assert.Equal(t, []int{0, 3, 6}, keys(bfs.Depth))
	assert.Equal(t, keys(bfs.Depth), keys(dfs.Depth))

	// Walled-off cells are absent, never present with a sentinel.
	for _, unreached := range []int{1, 2, 4, 5, 7, 8} {
		assert.False(t, bfs.Reached(unreached), "cell %d should be unreached", unreached)
		_, inDepth := bfs.Depth[unreached]
		assert.False(t, inDepth)
	}
}

func TestWalk_Trailhead4x4(t *testing.T) {
	ti := mustIndex(t, 4, 4)
	set, err := walk.Reachable(ti, []int{0}, uphill)
	require.NoError(t, err)

	assert.Len(t, set, 16, "the gradient fixture connects every cell")
	peaks := 0
	for i := range set {
		if heights4x4[i] == 9 {
			peaks++
		}
	}
	assert.Equal(t, 1, peaks, "exactly one peak is reachable from the trailhead")
}

func TestDistances_MultiSource(t *testing.T) {
	ti := mustIndex(t, 3, 3)
	dist, err := walk.Distances(ti, []int{0, 8}, nil)
	require.NoError(t, err)

	assert.Equal(t, map[int]int{
		0: 0, 8: 0,
		1: 1, 3: 1, 5: 1, 7: 1,
		2: 2, 4: 2, 6: 2,
	}, dist, "each cell takes the minimum over both seeds")
}

func TestDistances_ForcesBFS(t *testing.T) {
	ti := mustIndex(t, 3, 3)
	// A depth-first frontier would record 8 for the far corner (see
	// TestWalk_DFSOrder); Distances must override the strategy.
	dist, err := walk.Distances(ti, []int{0}, nil, walk.WithStrategy(walk.DepthFirst))
	require.NoError(t, err)
	assert.Equal(t, 4, dist[8])
}

func TestWalk_MaxDepth(t *testing.T) {
	ti := mustIndex(t, 5, 5)
	center := 12

	res, err := walk.Walk(ti, []int{center}, nil, walk.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Len(t, res.Depth, 5)
	for _, want := range []int{12, 7, 11, 13, 17} {
		assert.True(t, res.Reached(want), "cell %d within depth 1", want)
	}

	res, err = walk.Walk(ti, []int{center}, nil, walk.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Depth, 25, "MaxDepth 0 means no limit")
}

func TestWalk_OnVisitHook(t *testing.T) {
	ti := mustIndex(t, 3, 3)

	var seen []int
	res, err := walk.Walk(ti, []int{0}, nil, walk.WithOnVisit(func(index, _ int) error {
		seen = append(seen, index)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, res.Order, seen)

	boom := errors.New("boom")
	res, err = walk.Walk(ti, []int{0}, nil, walk.WithOnVisit(func(index, _ int) error {
		if index == 4 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	require.NotNil(t, res)
	assert.Equal(t, 4, res.Order[len(res.Order)-1], "walk stops at the failing cell")
}

func TestWalk_ContextCancel(t *testing.T) {
	ti := mustIndex(t, 3, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := walk.Walk(ti, []int{0}, nil, walk.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalk_PredicateOncePerEdge(t *testing.T) {
	ti := mustIndex(t, 3, 3)
	calls := make(map[[2]int]int)
	pass := func(from, to int) bool {
		calls[[2]int{from, to}]++
		return true
	}

	_, err := walk.Walk(ti, []int{0}, pass)
	require.NoError(t, err)
	for edge, n := range calls {
		assert.Equal(t, 1, n, "edge %v evaluated more than once", edge)
	}
}

// TestWalk_ConcurrentSharedIndex runs many walks over one Index at once;
// the Index is read-only, so every call must own its state and agree.
func TestWalk_ConcurrentSharedIndex(t *testing.T) {
	ti := mustIndex(t, 20, 20)
	want, err := walk.Walk(ti, []int{0}, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := walk.Walk(ti, []int{0}, nil)
			assert.NoError(t, err)
			assert.Equal(t, want.Order, res.Order)
		}()
	}
	wg.Wait()
}

func TestResult_PathTo(t *testing.T) {
	ti := mustIndex(t, 3, 3)
	res, err := walk.Walk(ti, []int{0}, nil)
	require.NoError(t, err)

	path, err := res.PathTo(8)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 5, 8}, path)
	assert.Len(t, path, res.Depth[8]+1)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)

	walled, err := walk.Walk(ti, []int{0}, blockCells(1, 4, 7))
	require.NoError(t, err)
	_, err = walled.PathTo(8)
	assert.ErrorIs(t, err, walk.ErrNoPath)
}
