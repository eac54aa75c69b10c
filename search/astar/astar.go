// Package astar provides A* managers: the frontier is ordered by
// accumulated transition cost plus heuristic score.
//
// States implement spacesearch.CostSearchable. With non-negative costs and
// an admissible, consistent score, the first solution yielded has minimal
// total cost. The engine does not verify the heuristic; an inadmissible
// score silently degrades to a greedy search.
package astar

import (
	"iter"

	"github.com/hupe1980/spacesearch"
	"github.com/hupe1980/spacesearch/visited"
)

// NoRoute builds an A* manager yielding bare solution states.
func NoRoute[S spacesearch.CostSearchable[S, C], C spacesearch.Number](v visited.Set[S]) *spacesearch.Manager[S, C, S] {
	return spacesearch.NewManager(config[S, C](v))
}

// Route builds an A* manager yielding solution routes.
func Route[S spacesearch.CostSearchable[S, C], C spacesearch.Number](v visited.Set[S]) *spacesearch.Manager[S, C, []S] {
	return spacesearch.NewRouteManager(config[S, C](v))
}

// NoRouteHashable is the A*, solution-only manager with a visited set.
func NoRouteHashable[S interface {
	comparable
	spacesearch.CostSearchable[S, C]
}, C spacesearch.Number]() *spacesearch.Manager[S, C, S] {
	return NoRoute[S, C](visited.NewSet[S]())
}

// NoRouteUnhashable is the A*, solution-only manager without a visited set.
func NoRouteUnhashable[S spacesearch.CostSearchable[S, C], C spacesearch.Number]() *spacesearch.Manager[S, C, S] {
	return NoRoute[S, C](visited.None[S]())
}

// RouteHashable is the A*, route-yielding manager with a visited set.
func RouteHashable[S interface {
	comparable
	spacesearch.CostSearchable[S, C]
}, C spacesearch.Number]() *spacesearch.Manager[S, C, []S] {
	return Route[S, C](visited.NewSet[S]())
}

// RouteUnhashable is the A*, route-yielding manager without a visited set.
func RouteUnhashable[S spacesearch.CostSearchable[S, C], C spacesearch.Number]() *spacesearch.Manager[S, C, []S] {
	return Route[S, C](visited.None[S]())
}

func config[S spacesearch.CostSearchable[S, C], C spacesearch.Number](v visited.Set[S]) spacesearch.Config[S, C] {
	return spacesearch.Config[S, C]{
		Order:   spacesearch.AStar,
		Visited: v,
		Successors: func(s S) iter.Seq2[S, C] {
			return s.NextStatesWithCosts()
		},
		Priority: func(s S, cost C) C { return cost + s.Score() },
	}
}
