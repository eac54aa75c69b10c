package spacesearch

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting search metrics.
// Implement this interface to integrate with monitoring systems; see
// package metrics/prometheus for a Prometheus-backed implementation.
//
// Collectors may be shared by searchers running on different goroutines,
// so implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordExpansion is called after each state expansion.
	// generated is the number of successors produced, enqueued the number
	// placed on the frontier (the rest were already visited).
	RecordExpansion(strategy Strategy, generated, enqueued int)

	// RecordDuplicate is called when a popped state is skipped because it
	// was already visited.
	RecordDuplicate(strategy Strategy)

	// RecordSolution is called when a solution is yielded.
	// depth is the number of transitions from the initial state.
	RecordSolution(strategy Strategy, depth int)

	// RecordExhausted is called once when a search runs out of states.
	RecordExhausted(strategy Strategy)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordExpansion(Strategy, int, int) {}
func (NoopMetricsCollector) RecordDuplicate(Strategy)           {}
func (NoopMetricsCollector) RecordSolution(Strategy, int)       {}
func (NoopMetricsCollector) RecordExhausted(Strategy)           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	Expansions  atomic.Int64
	Generated   atomic.Int64
	Enqueued    atomic.Int64
	Duplicates  atomic.Int64
	Solutions   atomic.Int64
	DepthTotal  atomic.Int64
	Exhaustions atomic.Int64
}

// RecordExpansion implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExpansion(_ Strategy, generated, enqueued int) {
	b.Expansions.Add(1)
	b.Generated.Add(int64(generated))
	b.Enqueued.Add(int64(enqueued))
}

// RecordDuplicate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDuplicate(Strategy) {
	b.Duplicates.Add(1)
}

// RecordSolution implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolution(_ Strategy, depth int) {
	b.Solutions.Add(1)
	b.DepthTotal.Add(int64(depth))
}

// RecordExhausted implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExhausted(Strategy) {
	b.Exhaustions.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		Expansions:    b.Expansions.Load(),
		Generated:     b.Generated.Load(),
		Enqueued:      b.Enqueued.Load(),
		Duplicates:    b.Duplicates.Load(),
		Solutions:     b.Solutions.Load(),
		AvgDepth:      b.avgDepth(),
		Exhaustions:   b.Exhaustions.Load(),
		BranchingRate: b.branchingRate(),
	}
}

func (b *BasicMetricsCollector) avgDepth() float64 {
	n := b.Solutions.Load()
	if n == 0 {
		return 0
	}
	return float64(b.DepthTotal.Load()) / float64(n)
}

func (b *BasicMetricsCollector) branchingRate() float64 {
	n := b.Expansions.Load()
	if n == 0 {
		return 0
	}
	return float64(b.Generated.Load()) / float64(n)
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	Expansions    int64
	Generated     int64
	Enqueued      int64
	Duplicates    int64
	Solutions     int64
	AvgDepth      float64
	Exhaustions   int64
	BranchingRate float64 // mean successors generated per expansion
}
