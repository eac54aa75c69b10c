// Package guided provides managers that explore the lowest-scoring state
// first. Equal scores are explored in discovery order.
//
// States implement spacesearch.ScoredSearchable; lower scores must mean
// closer to a solution. The score need not be admissible.
package guided

import (
	"iter"

	"github.com/hupe1980/spacesearch"
	"github.com/hupe1980/spacesearch/visited"
)

// NoRoute builds a guided manager yielding bare solution states.
func NoRoute[S spacesearch.ScoredSearchable[S, C], C spacesearch.Number](v visited.Set[S]) *spacesearch.Manager[S, C, S] {
	return spacesearch.NewManager(config[S, C](v))
}

// Route builds a guided manager yielding solution routes.
func Route[S spacesearch.ScoredSearchable[S, C], C spacesearch.Number](v visited.Set[S]) *spacesearch.Manager[S, C, []S] {
	return spacesearch.NewRouteManager(config[S, C](v))
}

// NoRouteHashable is the guided, solution-only manager with a visited set.
func NoRouteHashable[S interface {
	comparable
	spacesearch.ScoredSearchable[S, C]
}, C spacesearch.Number]() *spacesearch.Manager[S, C, S] {
	return NoRoute[S, C](visited.NewSet[S]())
}

// NoRouteUnhashable is the guided, solution-only manager without a visited set.
func NoRouteUnhashable[S spacesearch.ScoredSearchable[S, C], C spacesearch.Number]() *spacesearch.Manager[S, C, S] {
	return NoRoute[S, C](visited.None[S]())
}

// RouteHashable is the guided, route-yielding manager with a visited set.
func RouteHashable[S interface {
	comparable
	spacesearch.ScoredSearchable[S, C]
}, C spacesearch.Number]() *spacesearch.Manager[S, C, []S] {
	return Route[S, C](visited.NewSet[S]())
}

// RouteUnhashable is the guided, route-yielding manager without a visited set.
func RouteUnhashable[S spacesearch.ScoredSearchable[S, C], C spacesearch.Number]() *spacesearch.Manager[S, C, []S] {
	return Route[S, C](visited.None[S]())
}

func config[S spacesearch.ScoredSearchable[S, C], C spacesearch.Number](v visited.Set[S]) spacesearch.Config[S, C] {
	return spacesearch.Config[S, C]{
		Order:   spacesearch.Guided,
		Visited: v,
		Successors: func(s S) iter.Seq2[S, C] {
			return spacesearch.UnitCost[S, C](s.NextStates())
		},
		Priority: func(s S, _ C) C { return s.Score() },
	}
}
