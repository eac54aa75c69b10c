package spacesearch

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is the set of types usable as scores and transition costs.
type Number interface {
	constraints.Integer | constraints.Float
}

// SolutionIdentifiable is implemented by states that can tell whether they
// are a solution. IsSolution must be a pure predicate; it is called once per
// dequeued state, before expansion.
type SolutionIdentifiable interface {
	IsSolution() bool
}

// Searchable is the basic capability for depth-first and breadth-first
// exploration.
//
// NextStates yields the states reachable from the receiver in one step. The
// sequence may be lazy or infinite and may contain duplicates or states that
// were already explored; the engine pulls successors one at a time.
//
// An expansion drains the whole sequence unless a successor cap is set, so
// infinite sequences need WithMaxSuccessors (or Config.MaxSuccessors);
// without one, Next never returns once such a state is expanded.
type Searchable[S any] interface {
	SolutionIdentifiable
	NextStates() iter.Seq[S]
}

// Scoreable is implemented by states carrying a heuristic score.
// Lower scores are closer to a solution. For A* the score should never
// overestimate the remaining cost, otherwise the first solution found is
// not guaranteed to be optimal.
type Scoreable[C Number] interface {
	Score() C
}

// ScoredSearchable is required by guided managers.
type ScoredSearchable[S any, C Number] interface {
	Searchable[S]
	Scoreable[C]
}

// CostSearchable is required by A* managers. NextStatesWithCosts yields each
// successor paired with the non-negative cost of the transition to it.
type CostSearchable[S any, C Number] interface {
	SolutionIdentifiable
	Scoreable[C]
	NextStatesWithCosts() iter.Seq2[S, C]
}

// UnitCost adapts a successor sequence to one where every transition costs 1.
func UnitCost[S any, C Number](next iter.Seq[S]) iter.Seq2[S, C] {
	return func(yield func(S, C) bool) {
		for s := range next {
			if !yield(s, 1) {
				return
			}
		}
	}
}
