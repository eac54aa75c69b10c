// Package spacesearch provides lazy, generic state-space search for Go.
//
// A problem is described by its states: each state knows whether it is a
// solution and how to produce its successors. spacesearch explores the
// space from an initial state and yields solutions one at a time, on
// demand, so infinite spaces and "first k solutions" queries work without
// enumerating everything.
//
// # Quick Start
//
//	type Pos struct{ X, Y int }
//
//	func (p Pos) IsSolution() bool { return p == Pos{5, 5} }
//	func (p Pos) NextStates() iter.Seq[Pos] { ... }
//
//	s := spacesearch.New(Pos{}, unguided.RouteHashable[Pos](unguided.BreadthFirst))
//	route, ok := s.Next() // [{0 0} ... {5 5}]
//
// # Strategies
//
// Managers are built by the search subpackages. Every strategy is one point
// in a three-axis table:
//
//	Order:  breadth_first | depth_first   (search/unguided)
//	        guided                        (search/guided, lowest Score first)
//	        a_star                        (search/astar, lowest cost+Score first)
//	Dedup:  hashable   never expands a state twice (requires comparable S)
//	        unhashable no visited set; states may be re-explored
//	Shape:  no_route   yields the solution state
//	        route      yields the path from the initial state to the solution
//
// The constructor name picks the cell: guided.RouteHashable,
// unguided.NoRouteUnhashable, astar.NoRouteHashable and so on. Custom
// visited policies (keyed sets, roaring bitmaps) plug in through the
// NoRoute/Route constructors or a hand-built Config.
//
// Strategies have a text form ("a_star/hashable/route") understood by
// ParseStrategy, and Strategy implements encoding.TextMarshaler, so it can
// be read from YAML or JSON configuration.
//
// # Capabilities
//
//	SolutionIdentifiable   IsSolution() bool
//	Searchable[S]          NextStates() iter.Seq[S]
//	Scoreable[C]           Score() C, lower is closer to a solution
//	CostSearchable[S, C]   NextStatesWithCosts() iter.Seq2[S, C] plus the above
//
// Successor sequences are pulled lazily. WithMaxSuccessors bounds how many
// are drawn from one state so that infinite branching still terminates
// each expansion.
//
// # Guarantees
//
//   - Breadth-first route yields a route with the fewest transitions first.
//   - A* with non-negative costs and an admissible, consistent score yields
//     a minimal-cost solution first.
//   - Hashable strategies expand each distinct state at most once.
//   - Solutions are yielded in a deterministic order; ties in score are
//     broken first-in-first-out.
//   - A yielded route is an independent slice owned by the caller.
//
// # Observability
//
// Searchers accept a *Logger (slog based) and a MetricsCollector:
//
//	metrics := &spacesearch.BasicMetricsCollector{}
//	s := spacesearch.New(start, m,
//	    spacesearch.WithLogger(spacesearch.NewTextLogger(slog.LevelDebug)),
//	    spacesearch.WithMetricsCollector(metrics),
//	)
//
// The metrics/prometheus package exports the same events as Prometheus
// counters and a solution depth histogram.
//
// # Thread Safety
//
// A Searcher and its Manager are single-goroutine objects. Independent
// searchers may run concurrently as long as they share no mutable state.
package spacesearch
