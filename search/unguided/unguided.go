// Package unguided provides depth-first and breadth-first managers.
//
// States only need to implement spacesearch.Searchable. Hashable variants
// additionally require S to be comparable.
//
//	m := unguided.NoRouteHashable[Pos](unguided.BreadthFirst)
//	s := spacesearch.New(Pos{0, 0}, m)
//	sol, ok := s.Next()
package unguided

import (
	"fmt"
	"iter"

	"github.com/hupe1980/spacesearch"
	"github.com/hupe1980/spacesearch/visited"
)

// Exploration orders accepted by this package.
const (
	BreadthFirst = spacesearch.BreadthFirst
	DepthFirst   = spacesearch.DepthFirst
)

// NoRoute builds a manager yielding bare solution states, deduplicating with v.
func NoRoute[S spacesearch.Searchable[S]](order spacesearch.Order, v visited.Set[S]) *spacesearch.Manager[S, int, S] {
	return spacesearch.NewManager(config(order, v))
}

// Route builds a manager yielding solution routes, deduplicating with v.
func Route[S spacesearch.Searchable[S]](order spacesearch.Order, v visited.Set[S]) *spacesearch.Manager[S, int, []S] {
	return spacesearch.NewRouteManager(config(order, v))
}

// NoRouteHashable is the unguided, solution-only manager that never
// expands a state twice.
func NoRouteHashable[S interface {
	comparable
	spacesearch.Searchable[S]
}](order spacesearch.Order) *spacesearch.Manager[S, int, S] {
	return NoRoute[S](order, visited.NewSet[S]())
}

// NoRouteUnhashable is the unguided, solution-only manager without a
// visited set.
func NoRouteUnhashable[S spacesearch.Searchable[S]](order spacesearch.Order) *spacesearch.Manager[S, int, S] {
	return NoRoute[S](order, visited.None[S]())
}

// RouteHashable is the unguided, route-yielding manager that never expands
// a state twice.
func RouteHashable[S interface {
	comparable
	spacesearch.Searchable[S]
}](order spacesearch.Order) *spacesearch.Manager[S, int, []S] {
	return Route[S](order, visited.NewSet[S]())
}

// RouteUnhashable is the unguided, route-yielding manager without a visited set.
func RouteUnhashable[S spacesearch.Searchable[S]](order spacesearch.Order) *spacesearch.Manager[S, int, []S] {
	return Route[S](order, visited.None[S]())
}

func config[S spacesearch.Searchable[S]](order spacesearch.Order, v visited.Set[S]) spacesearch.Config[S, int] {
	if order != BreadthFirst && order != DepthFirst {
		panic(fmt.Sprintf("unguided: unsupported order %s", order))
	}
	return spacesearch.Config[S, int]{
		Order:   order,
		Visited: v,
		Successors: func(s S) iter.Seq2[S, int] {
			return spacesearch.UnitCost[S, int](s.NextStates())
		},
	}
}
