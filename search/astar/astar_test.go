package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/spacesearch"
	"github.com/hupe1980/spacesearch/search/astar"
	"github.com/hupe1980/spacesearch/testutil"
	"github.com/hupe1980/spacesearch/visited"
)

func graph() *testutil.Graph {
	return &testutil.Graph{
		Edges: map[string][]testutil.Edge{
			"S": {{To: "A", Cost: 1}, {To: "B", Cost: 4}},
			"A": {{To: "G", Cost: 5}},
			"B": {{To: "G", Cost: 1}},
		},
		Heuristic: map[string]float64{"S": 5, "A": 5, "B": 1},
		Goals:     map[string]bool{"G": true},
	}
}

func ids(vs []testutil.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.ID
	}
	return out
}

func TestStrategies(t *testing.T) {
	assert.Equal(t, "a_star/hashable/no_route", astar.NoRouteHashable[testutil.Vertex, float64]().Strategy().String())
	assert.Equal(t, "a_star/unhashable/no_route", astar.NoRouteUnhashable[testutil.Vertex, float64]().Strategy().String())
	assert.Equal(t, "a_star/hashable/route", astar.RouteHashable[testutil.Vertex, float64]().Strategy().String())
	assert.Equal(t, "a_star/unhashable/route", astar.RouteUnhashable[testutil.Vertex, float64]().Strategy().String())
}

func TestRoute_Optimal(t *testing.T) {
	g := graph()
	for name, m := range map[string]*spacesearch.Manager[testutil.Vertex, float64, []testutil.Vertex]{
		"hashable":   astar.RouteHashable[testutil.Vertex, float64](),
		"unhashable": astar.RouteUnhashable[testutil.Vertex, float64](),
	} {
		t.Run(name, func(t *testing.T) {
			route, ok := spacesearch.New(g.Node("S"), m).Next()
			require.True(t, ok)
			assert.Equal(t, []string{"S", "B", "G"}, ids(route))
			assert.Equal(t, g.ShortestCost("S"), g.PathCost(ids(route)...))
		})
	}
}

func TestNoRoute_Goal(t *testing.T) {
	sol, ok := spacesearch.New(graph().Node("S"), astar.NoRouteHashable[testutil.Vertex, float64]()).Next()
	require.True(t, ok)
	assert.Equal(t, "G", sol.ID)
}

func TestRoute_WeightedMazeWithBitmap(t *testing.T) {
	m := testutil.ParseMaze(
		"S.9.",
		".#9.",
		"...G",
	)
	v := visited.NewBitmap(func(c testutil.Cell) uint64 { return uint64(c.Y*m.W + c.X) })
	route, ok := spacesearch.New(m.Start(), astar.Route[testutil.Cell, int](v)).Next()
	require.True(t, ok)
	assert.True(t, testutil.ValidRoute(route))
	assert.Equal(t, m.ShortestCost(true), testutil.RouteCost(route))
	assert.LessOrEqual(t, m.MaxExpansions(), 1)
}
