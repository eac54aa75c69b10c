package spacesearch

import (
	"fmt"
	"iter"

	"github.com/hupe1980/spacesearch/internal/frontier"
	"github.com/hupe1980/spacesearch/internal/route"
	"github.com/hupe1980/spacesearch/visited"
)

// Node wraps a state awaiting exploration.
type Node[S any, C Number] struct {
	// State is the wrapped state.
	State S
	// Cost is the accumulated transition cost from the initial state. For
	// strategies without transition costs every step costs 1.
	Cost C
	// Depth is the number of transitions from the initial state.
	Depth int

	path *route.Path[S]
}

// Config describes one manager variant. The search/unguided, search/guided
// and search/astar packages fill it in for each cell of the strategy table;
// most callers use those constructors instead of building a Config by hand.
type Config[S any, C Number] struct {
	// Order selects the frontier discipline.
	Order Order

	// Visited is the dedup policy. nil means visited.None.
	Visited visited.Set[S]

	// Successors expands a state into (successor, transition cost) pairs.
	Successors func(S) iter.Seq2[S, C]

	// Priority computes the frontier key of a state reached at the given
	// accumulated cost. Required for Guided and AStar, ignored otherwise.
	Priority func(state S, cost C) C

	// MaxSuccessors caps how many successors are drawn from each state's
	// sequence. Zero means unlimited. A cap makes infinite successor
	// sequences safe to search at the price of completeness.
	MaxSuccessors int

	// InitialCapacity pre-sizes the frontier.
	InitialCapacity int
}

// Manager encapsulates one complete exploration strategy: how the frontier
// is seeded and ordered, how candidates are expanded, whether states are
// deduplicated and whether routes are retained.
//
// All strategy combinations share this single driver; they differ only in
// the frontier, dedup policy and result shape plugged into it.
//
// Manager is NOT thread-safe. It is owned by a single Searcher.
type Manager[S any, C Number, R any] struct {
	strategy   Strategy
	frontier   frontier.Frontier[Node[S, C]]
	visited    visited.Set[S]
	enqueue    func(Node[S, C])
	successors func(S) iter.Seq2[S, C]
	route      bool
	result     func(Node[S, C]) R
	limit      int

	metrics MetricsCollector
	stats   Stats
}

// NewManager builds a manager that yields bare solution states.
func NewManager[S any, C Number](cfg Config[S, C]) *Manager[S, C, S] {
	m := newManager[S, C, S](cfg, NoRoute)
	m.result = func(n Node[S, C]) S { return n.State }
	return m
}

// NewRouteManager builds a manager that yields, for each solution, the
// states from the initial state to the solution inclusive.
func NewRouteManager[S any, C Number](cfg Config[S, C]) *Manager[S, C, []S] {
	m := newManager[S, C, []S](cfg, Route)
	m.route = true
	m.result = func(n Node[S, C]) []S { return n.path.Slice() }
	return m
}

func newManager[S any, C Number, R any](cfg Config[S, C], shape Shape) *Manager[S, C, R] {
	if cfg.Successors == nil {
		panic("spacesearch: Config.Successors is nil")
	}
	if cfg.Visited == nil {
		cfg.Visited = visited.None[S]()
	}

	m := &Manager[S, C, R]{
		visited:    cfg.Visited,
		successors: cfg.Successors,
		limit:      cfg.MaxSuccessors,
		metrics:    NoopMetricsCollector{},
	}

	switch cfg.Order {
	case BreadthFirst, DepthFirst:
		var d *frontier.Deque[Node[S, C]]
		if cfg.Order == DepthFirst {
			d = frontier.NewStack[Node[S, C]](cfg.InitialCapacity)
		} else {
			d = frontier.NewQueue[Node[S, C]](cfg.InitialCapacity)
		}
		m.frontier = d
		m.enqueue = d.Push
	case Guided, AStar:
		if cfg.Priority == nil {
			panic(fmt.Sprintf("spacesearch: %s requires Config.Priority", cfg.Order))
		}
		// Keys stay in C so integer scores compare exactly.
		pq := frontier.NewPriorityQueue[Node[S, C], C](cfg.InitialCapacity)
		priority := cfg.Priority
		m.frontier = pq
		m.enqueue = func(n Node[S, C]) { pq.Push(n, priority(n.State, n.Cost)) }
	default:
		panic(fmt.Sprintf("spacesearch: unsupported order %s", cfg.Order))
	}

	dedup := Unhashable
	if cfg.Visited.Enabled() {
		dedup = Hashable
	}
	m.strategy = Strategy{Order: cfg.Order, Dedup: dedup, Shape: shape}
	return m
}

// Strategy returns the strategy table cell this manager implements.
func (m *Manager[S, C, R]) Strategy() Strategy { return m.strategy }

// SetDepthFirst toggles depth-first exploration on an unguided manager.
// It may be called between pulls; queued states are kept.
// Metrics labels and the searcher's log strategy field follow the change.
// It panics on guided and A* managers.
func (m *Manager[S, C, R]) SetDepthFirst(on bool) {
	d, ok := m.frontier.(*frontier.Deque[Node[S, C]])
	if !ok {
		panic(fmt.Sprintf("spacesearch: SetDepthFirst on %s manager", m.strategy.Order))
	}
	d.SetLIFO(on)
	if on {
		m.strategy.Order = DepthFirst
	} else {
		m.strategy.Order = BreadthFirst
	}
}

// SetMaxSuccessors changes the per-state successor cap. Zero means unlimited.
func (m *Manager[S, C, R]) SetMaxSuccessors(n int) {
	m.limit = max(n, 0)
}

// Seed resets the manager and places the initial state on the frontier at
// cost zero.
func (m *Manager[S, C, R]) Seed(initial S) {
	m.frontier.Reset()
	m.visited.Reset()
	m.stats = Stats{}

	n := Node[S, C]{State: initial}
	if m.route {
		n.path = route.Root(initial)
	}
	m.push(n)
}

// NextCandidate pops the next node per the frontier's discipline. It
// returns false once the frontier is exhausted.
//
// Under a dedup policy a state is marked visited here, at dequeue time.
// Queued duplicates of an already dequeued state are skipped, so each
// distinct state is tested and expanded at most once.
func (m *Manager[S, C, R]) NextCandidate() (Node[S, C], bool) {
	for {
		n, ok := m.frontier.Pop()
		if !ok {
			return Node[S, C]{}, false
		}
		m.stats.Popped++
		if !m.visited.Visit(n.State) {
			m.stats.Duplicates++
			m.metrics.RecordDuplicate(m.strategy)
			continue
		}
		return n, true
	}
}

// Successors returns the expansion of n's state.
func (m *Manager[S, C, R]) Successors(n Node[S, C]) iter.Seq2[S, C] {
	return m.successors(n.State)
}

// RecordExpansion turns successors of parent into child nodes and queues
// them. Successors already visited are pruned. Each child extends the
// parent's route (if retained) and accumulated cost.
//
// It panics on a negative transition cost.
func (m *Manager[S, C, R]) RecordExpansion(parent Node[S, C], successors iter.Seq2[S, C]) {
	var generated, enqueued int
	for s, step := range successors {
		generated++
		if step < 0 {
			panic(fmt.Sprintf("spacesearch: negative transition cost %v", step))
		}
		if !m.visited.Visited(s) {
			child := Node[S, C]{
				State: s,
				Cost:  parent.Cost + step,
				Depth: parent.Depth + 1,
			}
			if m.route {
				child.path = parent.path.Extend(s)
			}
			m.push(child)
			enqueued++
		}
		if m.limit > 0 && generated >= m.limit {
			break
		}
	}

	m.stats.Expanded++
	m.stats.Generated += generated
	m.stats.Enqueued += enqueued
	m.stats.Pruned += generated - enqueued
	m.metrics.RecordExpansion(m.strategy, generated, enqueued)
}

// Result shapes a solution node into the value yielded to the host.
func (m *Manager[S, C, R]) Result(n Node[S, C]) R {
	return m.result(n)
}

// FrontierLen returns the number of queued nodes, duplicates included.
func (m *Manager[S, C, R]) FrontierLen() int { return m.frontier.Len() }

// VisitedLen returns the number of distinct states marked visited.
func (m *Manager[S, C, R]) VisitedLen() int { return m.visited.Len() }

// Stats returns a snapshot of the manager's counters.
func (m *Manager[S, C, R]) Stats() Stats {
	s := m.stats
	s.FrontierLen = m.frontier.Len()
	s.VisitedLen = m.visited.Len()
	return s
}

func (m *Manager[S, C, R]) push(n Node[S, C]) {
	m.enqueue(n)
	if l := m.frontier.Len(); l > m.stats.MaxFrontier {
		m.stats.MaxFrontier = l
	}
}

// Stats counts the work done by a manager since it was seeded.
type Stats struct {
	Popped      int // nodes taken off the frontier
	Duplicates  int // popped nodes skipped as already visited
	Expanded    int // states passed to the expansion function
	Generated   int // successors produced by expansion
	Enqueued    int // successors placed on the frontier
	Pruned      int // successors dropped as already visited
	Solutions   int // solutions yielded
	MaxFrontier int // high-water mark of the frontier
	FrontierLen int
	VisitedLen  int
}
