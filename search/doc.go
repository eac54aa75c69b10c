// Package search groups the manager constructors for every cell of the
// strategy table:
//
//	order:  unguided (depth_first | breadth_first) | guided | astar
//	dedup:  hashable | unhashable
//	shape:  route | no_route
//
// Each subpackage exposes NoRoute and Route, which take an explicit
// visited.Set, plus the four named shortcuts NoRouteHashable,
// NoRouteUnhashable, RouteHashable and RouteUnhashable. The capability
// bounds of each variant are checked at compile time by its type parameters.
package search
