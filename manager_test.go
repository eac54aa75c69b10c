package spacesearch_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/spacesearch"
	"github.com/hupe1980/spacesearch/search/astar"
	"github.com/hupe1980/spacesearch/search/guided"
	"github.com/hupe1980/spacesearch/search/unguided"
	"github.com/hupe1980/spacesearch/testutil"
	"github.com/hupe1980/spacesearch/visited"
)

func TestManager_Strategy(t *testing.T) {
	type P = testutil.Pos

	tests := []struct {
		want string
		got  spacesearch.Strategy
	}{
		{"breadth_first/hashable/no_route", unguided.NoRouteHashable[P](unguided.BreadthFirst).Strategy()},
		{"depth_first/unhashable/no_route", unguided.NoRouteUnhashable[P](unguided.DepthFirst).Strategy()},
		{"breadth_first/hashable/route", unguided.RouteHashable[P](unguided.BreadthFirst).Strategy()},
		{"depth_first/unhashable/route", unguided.RouteUnhashable[P](unguided.DepthFirst).Strategy()},
		{"guided/hashable/no_route", guided.NoRouteHashable[P, int]().Strategy()},
		{"guided/unhashable/no_route", guided.NoRouteUnhashable[P, int]().Strategy()},
		{"guided/hashable/route", guided.RouteHashable[P, int]().Strategy()},
		{"guided/unhashable/route", guided.RouteUnhashable[P, int]().Strategy()},
		{"a_star/hashable/no_route", astar.NoRouteHashable[P, int]().Strategy()},
		{"a_star/unhashable/no_route", astar.NoRouteUnhashable[P, int]().Strategy()},
		{"a_star/hashable/route", astar.RouteHashable[P, int]().Strategy()},
		{"a_star/unhashable/route", astar.RouteUnhashable[P, int]().Strategy()},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.String())
		})
	}
}

func TestManager_DriverContract(t *testing.T) {
	m := unguided.RouteHashable[testutil.Pos](unguided.BreadthFirst)
	m.Seed(testutil.Pos{})
	assert.Equal(t, 1, m.FrontierLen())

	root, ok := m.NextCandidate()
	require.True(t, ok)
	assert.Equal(t, testutil.Pos{}, root.State)
	assert.Equal(t, 0, root.Cost)
	assert.Equal(t, 0, root.Depth)
	assert.Equal(t, 1, m.VisitedLen())

	m.RecordExpansion(root, m.Successors(root))
	assert.Equal(t, 4, m.FrontierLen())

	child, ok := m.NextCandidate()
	require.True(t, ok)
	assert.Equal(t, testutil.Pos{X: -1}, child.State)
	assert.Equal(t, 1, child.Cost)
	assert.Equal(t, 1, child.Depth)
	assert.Equal(t, []testutil.Pos{{}, {X: -1}}, m.Result(child))

	// the root is already visited, so only three of four successors are queued
	m.RecordExpansion(child, m.Successors(child))
	assert.Equal(t, 3+3, m.FrontierLen())

	st := m.Stats()
	assert.Equal(t, 2, st.Expanded)
	assert.Equal(t, 8, st.Generated)
	assert.Equal(t, 1, st.Pruned)

	// reseeding starts over
	m.Seed(testutil.Pos{X: 9})
	assert.Equal(t, 1, m.FrontierLen())
	assert.Equal(t, 0, m.VisitedLen())
	assert.Equal(t, 0, m.Stats().Expanded)
}

func TestManager_DedupAtDequeue(t *testing.T) {
	// two routes reach the same state before either copy is dequeued
	m := unguided.NoRouteHashable[testutil.Pos](unguided.BreadthFirst)
	m.Seed(testutil.Pos{})

	root, _ := m.NextCandidate()
	m.RecordExpansion(root, func(yield func(testutil.Pos, int) bool) {
		_ = yield(testutil.Pos{X: 1}, 1) && yield(testutil.Pos{X: 1}, 1)
	})
	assert.Equal(t, 2, m.FrontierLen(), "duplicates are kept on the frontier")

	first, ok := m.NextCandidate()
	require.True(t, ok)
	assert.Equal(t, testutil.Pos{X: 1}, first.State)

	_, ok = m.NextCandidate()
	assert.False(t, ok, "the queued duplicate collapses into the first dequeue")
	assert.Equal(t, 1, m.Stats().Duplicates)
}

func TestManager_SetDepthFirst(t *testing.T) {
	m := unguided.NoRouteHashable[testutil.Pos](unguided.BreadthFirst)
	m.SetDepthFirst(true)
	assert.Equal(t, spacesearch.DepthFirst, m.Strategy().Order)

	m.Seed(testutil.Pos{})
	root, _ := m.NextCandidate()
	m.RecordExpansion(root, m.Successors(root))

	next, _ := m.NextCandidate()
	assert.Equal(t, testutil.Pos{Y: 1}, next.State, "depth-first takes the newest successor")

	m.SetDepthFirst(false)
	assert.Equal(t, spacesearch.BreadthFirst, m.Strategy().Order)
	next, _ = m.NextCandidate()
	assert.Equal(t, testutil.Pos{X: -1}, next.State, "breadth-first takes the oldest successor")

	assert.Panics(t, func() { guided.NoRouteHashable[testutil.Pos, int]().SetDepthFirst(true) })
}

func TestManager_CustomConfig(t *testing.T) {
	// bitmap dedup over a dense cell index
	cfg := spacesearch.Config[testutil.Pos, int]{
		Order: spacesearch.BreadthFirst,
		Visited: visited.NewBitmap(func(p testutil.Pos) uint64 {
			return uint64(p.Y+1000)<<32 | uint64(p.X+1000)
		}),
		Successors: func(p testutil.Pos) iter.Seq2[testutil.Pos, int] {
			return spacesearch.UnitCost[testutil.Pos, int](p.NextStates())
		},
		InitialCapacity: 64,
	}

	s := spacesearch.New(testutil.Pos{}, spacesearch.NewRouteManager(cfg))
	route, ok := s.Next()
	require.True(t, ok)
	assert.Len(t, route, 11)
	assert.Equal(t, "breadth_first/hashable/route", s.Manager().Strategy().String())
}

func TestManager_InvalidConfig(t *testing.T) {
	succ := func(p testutil.Pos) iter.Seq2[testutil.Pos, int] {
		return spacesearch.UnitCost[testutil.Pos, int](p.NextStates())
	}

	assert.Panics(t, func() {
		spacesearch.NewManager(spacesearch.Config[testutil.Pos, int]{})
	}, "missing successors")
	assert.Panics(t, func() {
		spacesearch.NewManager(spacesearch.Config[testutil.Pos, int]{Order: spacesearch.Guided, Successors: succ})
	}, "guided without priority")
	assert.Panics(t, func() {
		spacesearch.NewManager(spacesearch.Config[testutil.Pos, int]{Order: spacesearch.Order(42), Successors: succ})
	}, "unknown order")
	assert.Panics(t, func() {
		unguided.NoRouteHashable[testutil.Pos](spacesearch.Guided)
	}, "unguided with a guided order")
}

func TestUnitCost(t *testing.T) {
	var costs []float64
	for _, c := range spacesearch.UnitCost[testutil.Pos, float64]((testutil.Pos{}).NextStates()) {
		costs = append(costs, c)
	}
	assert.Equal(t, []float64{1, 1, 1, 1}, costs)

	n := 0
	for range spacesearch.UnitCost[testutil.Counter, int]((testutil.Counter{}).NextStates()) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}
