package spacesearch

import (
	"iter"
)

// Searcher is a pull-based driver over a Manager. Each pull pops candidates,
// tests them, and expands non-solutions until a solution surfaces or the
// frontier is exhausted.
//
// Searcher is forward-only: once exhausted it stays exhausted. Pulling can
// stop at any point; nothing needs to be released.
//
// Searcher is NOT thread-safe. Between pulls all state is quiescent and may
// be inspected through Stats and Manager.
type Searcher[S SolutionIdentifiable, C Number, R any] struct {
	manager *Manager[S, C, R]
	base    *Logger
	logger  *Logger
	logged  Strategy // strategy carried by logger
	metrics MetricsCollector
	done    bool
}

// New creates a searcher that explores from initial using m.
//
// The manager is seeded immediately and becomes owned by the searcher; it
// must not be shared with another searcher.
func New[S SolutionIdentifiable, C Number, R any](initial S, m *Manager[S, C, R], optFns ...Option) *Searcher[S, C, R] {
	if m == nil {
		panic("spacesearch: nil manager")
	}

	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Searcher[S, C, R]{
		manager: m,
		base:    opts.logger,
		logger:  opts.logger.WithStrategy(m.Strategy()),
		logged:  m.Strategy(),
		metrics: opts.metricsCollector,
	}
	m.metrics = opts.metricsCollector
	if opts.setMaxSuccessors {
		m.SetMaxSuccessors(opts.maxSuccessors)
	}
	m.Seed(initial)
	s.log().LogSeed()
	return s
}

// NewDefault creates a searcher that explores from the zero value of S.
func NewDefault[S SolutionIdentifiable, C Number, R any](m *Manager[S, C, R], optFns ...Option) *Searcher[S, C, R] {
	var initial S
	return New(initial, m, optFns...)
}

// Next advances the search to the next solution. It returns false once the
// reachable space has been exhausted; every later call returns false too.
//
// Under an unhashable strategy on a cyclic space Next may never return.
func (s *Searcher[S, C, R]) Next() (R, bool) {
	var zero R
	if s.done {
		return zero, false
	}

	m := s.manager
	for {
		n, ok := m.NextCandidate()
		if !ok {
			s.done = true
			s.metrics.RecordExhausted(m.strategy)
			s.log().LogExhausted(m.Stats())
			return zero, false
		}

		if n.State.IsSolution() {
			m.stats.Solutions++
			s.metrics.RecordSolution(m.strategy, n.Depth)
			s.log().LogSolution(n.Depth, m.Stats())
			return m.Result(n), true
		}

		m.RecordExpansion(n, m.Successors(n))
	}
}

// All returns an iterator over the remaining solutions. Breaking out of the
// range loop leaves the searcher resumable from where it stopped.
func (s *Searcher[S, C, R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		for {
			r, ok := s.Next()
			if !ok || !yield(r) {
				return
			}
		}
	}
}

// Take pulls up to n solutions.
func (s *Searcher[S, C, R]) Take(n int) []R {
	out := make([]R, 0, max(n, 0))
	for len(out) < n {
		r, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, r)
	}
	return out
}

// Done reports whether the search space has been exhausted.
func (s *Searcher[S, C, R]) Done() bool { return s.done }

// Manager returns the manager driven by this searcher.
func (s *Searcher[S, C, R]) Manager() *Manager[S, C, R] { return s.manager }

// Stats returns a snapshot of the search counters.
func (s *Searcher[S, C, R]) Stats() Stats { return s.manager.Stats() }

// log returns the logger labelled with the manager's current strategy,
// which changes when SetDepthFirst flips the order between pulls.
func (s *Searcher[S, C, R]) log() *Logger {
	if st := s.manager.strategy; st != s.logged {
		s.logger = s.base.WithStrategy(st)
		s.logged = st
	}
	return s.logger
}
